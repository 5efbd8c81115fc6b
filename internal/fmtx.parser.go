package internal

// ParseSpec parses one substitution body.
//
// The grammar is a subset of Python's format mini-language:
//
//	sub:   '{' [ index | 'm' ] [ ':' body ] '}'
//	body:  [ [ fill ] align ] [ sign ] [ '#' ] [ '0' ] [ width ] [ '.' precision ] [ type ]
//	fill:  any single byte except '{' or '}'
//	align: '<' | '>' | '^' | '='
//	sign:  '+' | '-' | ' '
//	type:  's' 'c' 'd' 'u' 'o' 'x' 'X' 'e' 'E' 'f' 'F' 'g' 'G'
//
// index, width and precision are maximal runs of decimal digits. 'm'
// selects the ambient-error sentinel instead of an argument index.
//
// pos must point just past the opening '{' (the caller handles doubled
// braces). On success the spec is populated and the returned position is
// just past the matching '}'. On any grammar violation the spec is reset
// to invalid and the scan skips forward, tracking brace depth, to the
// close brace matching this placeholder (or the end of the string); the
// parser always makes forward progress.
func ParseSpec(src string, pos int, defaultIndex uint64, spec *Spec) int {
	p := pos
	spec.ArgIndex = defaultIndex

	if c := at(src, p); isDigit(c) {
		spec.ArgIndex, p = scanNumber(src, p)
	} else if c == CharErrnoIndex {
		spec.ArgIndex = IndexErrno
		p++
	}

	if at(src, p) == CharCloseBrace {
		return p + 1
	}

	if at(src, p) != CharColon {
		return skipMalformed(src, p, spec)
	}
	p++

	c0 := at(src, p)
	if c0 == CharOpenBrace || c0 == CharNul {
		return skipMalformed(src, p, spec)
	}
	if c0 == CharCloseBrace { // "{:}"
		return p + 1
	}

	// The presence of a fill byte is signaled by the byte after it, which
	// must be an alignment code. When the second byte is not an alignment
	// code but the first one is, the first byte is the alignment and the
	// fill defaults to a space.
	c1 := at(src, p+1)
	if c1 == CharNul {
		return skipMalformed(src, p, spec)
	}
	if isAlign(c1) {
		spec.Align = c1
		spec.Fill = c0
		p += 2
	} else if isAlign(c0) {
		spec.Align = c0
		spec.Fill = CharSpace
		p++
	}

	// Unlike printf, sign, alternate-form, and zero-fill must appear in
	// exactly this order.
	if c := at(src, p); c == CharPlus || c == CharMinus || c == CharSpace {
		spec.Sign = c
		p++
	}
	if at(src, p) == CharHash {
		spec.AlternateForm = true
		p++
	}
	if at(src, p) == CharZero {
		// '0' right before the width is shorthand for fill='0', align='='.
		// An explicit '=' alignment agrees with that and is allowed; any
		// other explicit alignment conflicts and is treated as an error
		// rather than silently picking a priority order.
		if spec.Align != 0 && spec.Align != AlignAfter {
			return skipMalformed(src, p, spec)
		}
		spec.Align = AlignAfter
		spec.Fill = CharZero
		p++
	}

	if isDigit(at(src, p)) {
		var w uint64
		w, p = scanNumber(src, p)
		spec.HasWidth = true
		spec.Width = uint(w)
	}

	if at(src, p) == CharDot {
		p++
		if !isDigit(at(src, p)) { // no number present after '.'
			return skipMalformed(src, p, spec)
		}
		var prec uint64
		prec, p = scanNumber(src, p)
		spec.HasPrecision = true
		spec.Precision = uint(prec)
	}

	if c := at(src, p); isTypeCode(c) {
		spec.Type = c
		p++
	}

	if at(src, p) == CharCloseBrace {
		return p + 1
	}

	return skipMalformed(src, p, spec)
}

// skipMalformed resets the spec to invalid and advances to the close
// brace matching the current placeholder, or the end of the string. The
// unparsed remainder may itself contain nested-looking braces, so brace
// depth is tracked.
func skipMalformed(src string, p int, spec *Spec) int {
	spec.Reset()

	depth := 1
	for p < len(src) {
		c := src[p]
		p++
		if c == CharOpenBrace {
			depth++
		}
		if c == CharCloseBrace {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	return p
}

// at returns the byte at position p, or NUL past the end.
func at(src string, p int) byte {
	if p >= len(src) {
		return CharNul
	}
	return src[p]
}

// scanNumber consumes a maximal run of decimal digits starting at p.
// Oversized values saturate at MaxParsedNumber, which still compares
// below both argument-index sentinels.
func scanNumber(src string, p int) (uint64, int) {
	var v uint64
	for p < len(src) && isDigit(src[p]) {
		if v < MaxParsedNumber {
			v = v*10 + uint64(src[p]-'0')
		}
		p++
	}
	if v > MaxParsedNumber {
		v = MaxParsedNumber
	}
	return v, p
}
