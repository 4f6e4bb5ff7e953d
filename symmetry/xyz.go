package symmetry

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseXYZ parses an operation in crystallographic xyz-triplet notation,
// e.g. "x,-y,z" or "-y,x-y,z+1/3", into a rotation matrix and translation
// vector. Coordinate terms may carry only unit coefficients; constant
// terms may be integers or rational fractions.
func ParseXYZ(s string) (Mat3, Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Mat3{}, Vec3{}, fmt.Errorf("symmetry: xyz triplet %q must have 3 components", s)
	}

	var rot Mat3
	var trans Vec3
	for i, part := range parts {
		row, t, err := parseXYZComponent(strings.TrimSpace(part))
		if err != nil {
			return Mat3{}, Vec3{}, fmt.Errorf("symmetry: xyz triplet %q: %w", s, err)
		}
		rot[i] = row
		trans[i] = t
	}
	return rot, trans, nil
}

func parseXYZComponent(s string) ([3]float64, float64, error) {
	var row [3]float64
	var trans float64
	if s == "" {
		return row, 0, fmt.Errorf("empty component")
	}

	sign := 1.0
	i := 0
	for i < len(s) {
		switch c := s[i]; c {
		case '+':
			sign = 1.0
			i++
		case '-':
			sign = -1.0
			i++
		case 'x', 'X':
			row[0] += sign
			sign = 1.0
			i++
		case 'y', 'Y':
			row[1] += sign
			sign = 1.0
			i++
		case 'z', 'Z':
			row[2] += sign
			sign = 1.0
			i++
		default:
			if c < '0' || c > '9' {
				return row, 0, fmt.Errorf("unexpected character %q", c)
			}
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '/' || s[j] == '.') {
				j++
			}
			v, err := parseRational(s[i:j])
			if err != nil {
				return row, 0, err
			}
			trans += sign * v
			sign = 1.0
			i = j
		}
	}
	return row, trans, nil
}

func parseRational(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("bad fraction %q", s)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("bad fraction %q", s)
		}
		return n / d, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad constant %q", s)
	}
	return v, nil
}
