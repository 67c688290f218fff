package programs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse reads a comma separated list of base-10 integers.
func Parse(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty program")
	}
	fields := strings.Split(text, ",")
	ret := make([]int64, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, fmt.Errorf("empty field at index %d", i)
		}
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func Load(path string) ([]int64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ret, err := Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ret, nil
}

func Format(program []int64) string {
	buf := new(strings.Builder)
	for i, v := range program {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	}
	return buf.String()
}
