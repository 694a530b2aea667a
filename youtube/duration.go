package youtube

import (
	"strconv"
	"strings"
)

// ParseISODuration converts the API's compact ISO-8601 duration form
// (e.g. "PT7M32S", "PT1H2M", "P1DT2H") to whole seconds. Malformed or
// empty input yields zero.
func ParseISODuration(s string) int {
	if len(s) < 2 || s[0] != 'P' {
		return 0
	}
	s = s[1:]

	datePart := s
	timePart := ""
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
	}

	total := 0
	ok := true

	consume := func(part string, units map[byte]int) {
		num := ""
		for i := 0; i < len(part); i++ {
			ch := part[i]
			if ch >= '0' && ch <= '9' {
				num += string(ch)
				continue
			}
			mult, known := units[ch]
			if !known || num == "" {
				ok = false
				return
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				ok = false
				return
			}
			total += n * mult
			num = ""
		}
		if num != "" {
			ok = false
		}
	}

	consume(datePart, map[byte]int{'D': 86400, 'W': 604800})
	consume(timePart, map[byte]int{'H': 3600, 'M': 60, 'S': 1})

	if !ok {
		return 0
	}
	return total
}
