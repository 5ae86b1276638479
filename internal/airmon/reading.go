package airmon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidReading = errors.New("invalid reading")

// ParseReading parses one line sent by the sensor. Surrounding
// whitespace is ignored. NaN and infinite values are rejected.
func ParseReading(line string) (PPM, error) {
	s := strings.TrimSpace(line)
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty line", ErrInvalidReading)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) {
			err = nerr.Err
		}
		return 0, fmt.Errorf("%w '%s': %s", ErrInvalidReading, s, err)
	}
	res := PPM(v)
	if res.IsFinite() == false {
		return 0, fmt.Errorf("%w '%s': not a finite number", ErrInvalidReading, s)
	}
	return res, nil
}
