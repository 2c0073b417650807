package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// FormatPrice renders an amount the way vi-VN does: dot thousands
// separators, comma decimals, trailing "đ".
func FormatPrice(a Amount) string {
	v := float64(a)
	neg := v < 0
	if neg {
		v = -v
	}
	whole := math.Floor(v)
	frac := math.Round((v - whole) * 1000)
	if frac >= 1000 {
		whole++
		frac = 0
	}

	digits := strconv.FormatFloat(whole, 'f', 0, 64)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if frac > 0 {
		b.WriteByte(',')
		b.WriteString(strings.TrimRight(fmt.Sprintf("%03d", int(frac)), "0"))
	}
	b.WriteString("đ")
	return b.String()
}

func FormatDate(dt strfmt.DateTime) string {
	t := time.Time(dt)
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006")
}

func FormatDateTime(dt strfmt.DateTime) string {
	t := time.Time(dt)
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("15:04 02/01/2006")
}
