package rmq

// LookupTable stores the answer of every query. Row i holds the minima of
// [i, i], [i, i+1], ..., [i, n-1], rows are packed one after another.
type LookupTable struct {
	n     int
	table []int32
}

// NewLookupTable precomputes all n(n+1)/2 answers in O(n²).
func NewLookupTable(cmp Comparator, n int) (*LookupTable, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	t := &LookupTable{n: n, table: make([]int32, n*(n+1)/2)}
	for i := 0; i < n; i++ {
		row := t.table[t.rowStart(i):]
		row[0] = int32(i)
		for j := i + 1; j < n; j++ {
			row[j-i] = int32(leftMin(cmp, int(row[j-i-1]), j))
		}
	}

	return t, nil
}

// Len returns the sequence length.
func (t *LookupTable) Len() int { return t.n }

// RangeMin returns the position of the leftmost minimum in [i, j].
func (t *LookupTable) RangeMin(i, j int) (int, error) {
	if err := checkRange(i, j, t.n); err != nil {
		return 0, err
	}
	return int(t.table[t.rowStart(i)+j-i]), nil
}

// SizeInBytes estimates the memory held by the table.
func (t *LookupTable) SizeInBytes() int { return 8 + 24 + 4*len(t.table) }

// rowStart is the offset of row i: rows 0..i-1 hold n, n-1, ..., n-i+1 entries.
func (t *LookupTable) rowStart(i int) int { return i*t.n - i*(i-1)/2 }
