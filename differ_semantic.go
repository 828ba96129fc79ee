package multidiff

// diffSemantic implements the line-LCS differ of spec §4.3. Both sides are
// split into newline-preserving lines, and a Myers-style bisection finds an
// alignment whose matching pairs form a longest common subsequence of
// lines. The bisection is the divide-and-conquer "middle snake" search,
// walking line tokens; the fast differ does no bisection at all.
func diffSemantic(source, destination string) []Operation {
	srcLines := splitLines(source)
	dstLines := splitLines(destination)

	b := newBuilder()
	emitLineDiff(b, srcLines, dstLines)
	return b.build()
}

// emitLineDiff recursively aligns srcLines/dstLines and feeds the result
// into b, in source order.
func emitLineDiff(b *builder, src, dst []Line) {
	// Trim common leading lines (speedup + determinism: ties prefer a
	// match over delete/insert, so greedily consuming equal prefixes
	// first can only help).
	lead := 0
	for lead < len(src) && lead < len(dst) && src[lead].Text == dst[lead].Text {
		lead++
	}
	if lead > 0 {
		for _, l := range src[:lead] {
			b.addRetain(l.Len())
		}
		emitLineDiff(b, src[lead:], dst[lead:])
		return
	}

	// Trim common trailing lines symmetrically.
	trail := 0
	for trail < len(src) && trail < len(dst) &&
		src[len(src)-1-trail].Text == dst[len(dst)-1-trail].Text {
		trail++
	}
	if trail > 0 {
		emitLineDiffCore(b, src[:len(src)-trail], dst[:len(dst)-trail])
		for _, l := range src[len(src)-trail:] {
			b.addRetain(l.Len())
		}
		return
	}

	emitLineDiffCore(b, src, dst)
}

// emitLineDiffCore handles the edge cases of spec §4.3 and otherwise
// dispatches to the line-token bisection.
func emitLineDiffCore(b *builder, src, dst []Line) {
	switch {
	case len(src) == 0 && len(dst) == 0:
		return
	case len(src) == 0:
		for _, l := range dst {
			b.addInsert(l.Text)
		}
		return
	case len(dst) == 0:
		for _, l := range src {
			b.addDelete(l.Len())
		}
		return
	case len(src) == 1 && len(dst) == 1:
		if src[0].Text == dst[0].Text {
			b.addRetain(src[0].Len())
		} else {
			b.addDelete(src[0].Len())
			b.addInsert(dst[0].Text)
		}
		return
	}

	x, y := lineBisect(src, dst)
	emitLineDiff(b, src[:x], dst[:y])
	emitLineDiff(b, src[x:], dst[y:])
}

// lineBisect finds a split point (x, y) such that aligning src[:x] against
// dst[:y] and src[x:] against dst[y:] independently reconstructs a valid
// LCS alignment of the whole, using Myers's O((M+N)D) middle-snake search
// at line granularity (ties resolved match > delete > insert via the
// forward path's greedy snake extension, matching spec §4.3).
func lineBisect(src, dst []Line) (int, int) {
	m, n := len(src), len(dst)
	maxD := (m + n + 1) / 2
	offset := maxD
	vlen := 2*maxD + 1

	v1 := make([]int, vlen)
	v2 := make([]int, vlen)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[offset+1] = 0
	v2[offset+1] = 0

	delta := m - n
	front := delta%2 != 0
	k1start, k1end, k2start, k2end := 0, 0, 0, 0

	for d := 0; d < maxD; d++ {
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := offset + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}
			y1 := x1 - k1
			for x1 < m && y1 < n && src[x1].Text == dst[y1].Text {
				x1++
				y1++
			}
			v1[k1Offset] = x1
			switch {
			case x1 > m:
				k1end += 2
			case y1 > n:
				k1start += 2
			case front:
				k2Offset := offset + delta - k1
				if k2Offset >= 0 && k2Offset < vlen && v2[k2Offset] != -1 {
					x2 := m - v2[k2Offset]
					if x1 >= x2 {
						return x1, y1
					}
				}
			}
		}
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := offset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < m && y2 < n && src[m-x2-1].Text == dst[n-y2-1].Text {
				x2++
				y2++
			}
			v2[k2Offset] = x2
			switch {
			case x2 > m:
				k2end += 2
			case y2 > n:
				k2start += 2
			case !front:
				k1Offset := offset + delta - k2
				if k1Offset >= 0 && k1Offset < vlen && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := offset + x1 - k1Offset
					mirroredX2 := m - x2
					if x1 >= mirroredX2 {
						return x1, y1
					}
				}
			}
		}
	}
	// No commonality at all within budget: treat as a full delete+insert
	// so the caller's edge-case handling takes over cleanly.
	return m, 0
}
