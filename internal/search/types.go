package search

// retained is one occurrence kept for sample rendering. text is shared by
// every occurrence found on the same page.
type retained struct {
	page   int
	text   []rune
	offset int
}

// fileTally accumulates the occurrences of one file.
type fileTally struct {
	file    string
	count   int
	samples []retained
}

// Tally holds per-file counts and retained occurrences in first-observed order.
type Tally struct {
	files []*fileTally
	index map[string]*fileTally
	pages int
}

func newTally() *Tally {
	return &Tally{index: make(map[string]*fileTally)}
}

// file returns the tally for name, registering it on first use.
func (t *Tally) file(name string) *fileTally {
	ft, ok := t.index[name]
	if !ok {
		ft = &fileTally{file: name}
		t.index[name] = ft
		t.files = append(t.files, ft)
	}
	return ft
}

// Count returns the number of occurrences found in file.
func (t *Tally) Count(file string) int {
	if ft, ok := t.index[file]; ok {
		return ft.count
	}
	return 0
}

// Retained returns the number of occurrences kept as samples for file.
func (t *Tally) Retained(file string) int {
	if ft, ok := t.index[file]; ok {
		return len(ft.samples)
	}
	return 0
}

// Files returns file names in the order they were first observed.
func (t *Tally) Files() []string {
	names := make([]string, len(t.files))
	for i, ft := range t.files {
		names[i] = ft.file
	}
	return names
}

// Total returns the sum of all per-file counts.
func (t *Tally) Total() int {
	total := 0
	for _, ft := range t.files {
		total += ft.count
	}
	return total
}

// PagesScanned returns the number of pages read while building the tally.
func (t *Tally) PagesScanned() int {
	return t.pages
}
