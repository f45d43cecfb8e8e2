package parallel

// Band is a half-open row range [Start, End).
type Band struct {
	Start int
	End   int
}

// Len returns the number of rows in the band.
func (b Band) Len() int {
	return b.End - b.Start
}

// Bands partitions rows [0, total) into contiguous bands of grain rows. The
// last band holds the remainder. A grain below 1 yields a single band.
func Bands(total, grain int) []Band {
	if total <= 0 {
		return nil
	}
	if grain < 1 || grain >= total {
		return []Band{{Start: 0, End: total}}
	}
	out := make([]Band, 0, (total+grain-1)/grain)
	for start := 0; start < total; start += grain {
		out = append(out, Band{Start: start, End: min(start+grain, total)})
	}
	return out
}

// ForRows calls fn once per band of Bands(total, grain) and returns when all
// calls are done. Bands run concurrently on p; a nil pool runs them in order
// on the calling goroutine.
func (p *WorkerPool) ForRows(total, grain int, fn func(start, end int)) {
	bands := Bands(total, grain)
	if p == nil || len(bands) == 1 {
		for _, b := range bands {
			fn(b.Start, b.End)
		}
		return
	}
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Start, b.End) }
	}
	p.ExecuteAll(work)
}
