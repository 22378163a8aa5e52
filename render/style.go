package render

// Near-black threshold for transparency detection. Sprite assets encode
// "no pixel" as a background-only style whose background is almost black
const (
	transparentChannelMax = 16
)

// Transparent reports whether a style token encodes an invisible sprite
// pixel: a background color with no foreground component, where the
// background is near-black. Such cells never produce a grid write.
func Transparent(style string) bool {
	if style == "" {
		return false
	}

	params := sgrParams(style)

	hasFg := false
	hasBg := false
	bgDark := false

	for i := 0; i < len(params); i++ {
		switch params[i] {
		case 38:
			hasFg = true
			i += colorArgCount(params, i)
		case 48:
			hasBg = true
			if i+1 < len(params) {
				switch params[i+1] {
				case 2:
					if i+4 < len(params) {
						bgDark = params[i+2] < transparentChannelMax &&
							params[i+3] < transparentChannelMax &&
							params[i+4] < transparentChannelMax
					}
				case 5:
					if i+2 < len(params) {
						idx := params[i+2]
						// Palette black and the darkest grayscale ramp entries
						bgDark = idx == 0 || idx == 16 || (idx >= 232 && idx <= 234)
					}
				}
			}
			i += colorArgCount(params, i)
		}
	}

	return hasBg && !hasFg && bgDark
}

// colorArgCount returns how many parameters the extended-color directive at
// params[i] consumes beyond itself (38;2;r;g;b or 38;5;n forms)
func colorArgCount(params []int, i int) int {
	if i+1 >= len(params) {
		return 0
	}
	switch params[i+1] {
	case 2:
		return 4
	case 5:
		return 2
	}
	return 0
}

// sgrParams extracts the numeric parameters of every SGR sequence in a
// style token. Non-SGR sequences contribute nothing.
func sgrParams(style string) []int {
	var params []int

	for i := 0; i < len(style); {
		if style[i] != esc || i+1 >= len(style) || style[i+1] != '[' {
			i++
			continue
		}

		j := i + 2
		n := 0
		haveDigit := false
		for ; j < len(style); j++ {
			c := style[j]
			switch {
			case c >= '0' && c <= '9':
				n = n*10 + int(c-'0')
				haveDigit = true
			case c == ';':
				if haveDigit {
					params = append(params, n)
				}
				n = 0
				haveDigit = false
			default:
				// Final byte; only SGR ('m') parameters count
				if c == 'm' && haveDigit {
					params = append(params, n)
				}
				j++
				goto next
			}
		}
	next:
		i = j
	}

	return params
}
