package simplot

// Summary describes the finite values of one column.
type Summary struct {
	Name string

	// N counts finite values, Missing the NaN and infinite ones.
	N, Missing int

	Min, Max, Mean float64
}

// Summarize computes the summary of f. If f has no finite values Min
// and Max are +Inf and -Inf.
func Summarize(f Field) Summary {
	s := Summary{Name: f.Name}
	sum := 0.0
	for _, x := range f.Data {
		if !finite(x) {
			s.Missing++
			continue
		}
		sum += x
		s.N++
	}
	s.Min, s.Max, _, _ = f.MinMax()
	if s.N > 0 {
		s.Mean = sum / float64(s.N)
	}
	return s
}

// Summaries returns the summaries of all non-time columns of df.
func Summaries(df *DataFrame) []Summary {
	var all []Summary
	for _, f := range df.Columns[1:] {
		all = append(all, Summarize(f))
	}
	return all
}
