package fixtures

// Store holds the static question/answer and document fixtures. It is loaded
// once at process start and never mutated; accessors scan in declaration
// order, which is what gives fixture matching its deterministic precedence.
type Store struct {
	qas       []QARecord
	documents []Document
	pool      []string
}

// NewStore builds a store from explicit fixture data. Chart specs without a
// declared value format get one derived from their title, once, here.
func NewStore(qas []QARecord, documents []Document, additionalQuestions []string) *Store {
	for qi := range qas {
		charts := qas[qi].Content.Charts
		for ci := range charts {
			if charts[ci].ValueFormat == "" {
				charts[ci].ValueFormat = deriveValueFormat(charts[ci].Title)
			}
		}
	}
	return &Store{qas: qas, documents: documents, pool: additionalQuestions}
}

// Default returns the store loaded with the hand-authored supply chain
// dataset.
func Default() *Store {
	return NewStore(supplyChainQAs(), sourceDocuments(), additionalQuestions())
}

// QARecords returns the question/answer fixtures in declaration order.
func (s *Store) QARecords() []QARecord {
	return s.qas
}

// Documents returns the document fixtures in declaration order.
func (s *Store) Documents() []Document {
	return s.documents
}

// Document looks up a pre-authored document by id.
func (s *Store) Document(id string) (Document, bool) {
	for _, d := range s.documents {
		if d.ID == id {
			return d, true
		}
	}
	return Document{}, false
}

// AdditionalQuestions returns the static pool used as the terminal follow-up
// fallback.
func (s *Store) AdditionalQuestions() []string {
	return s.pool
}
