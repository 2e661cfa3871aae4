package launcher

import (
	"strings"

	"github.com/thoreinstein/minnote/internal/errors"
)

// splitCommand splits a configured command such as "code --wait" into the
// program and its leading arguments.
func splitCommand(command string) (string, []string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, errors.Mark(errors.New("empty command"), errors.ErrProcessSpawn)
	}
	return fields[0], fields[1:], nil
}
