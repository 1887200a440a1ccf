package ingest

// Pipeline orchestrates record preparation:
// raw message → normalization → clean text
type Pipeline struct {
	normalizer *Normalizer
	tokenizer  *Tokenizer
}

// NewPipeline creates a preparation pipeline with the given components.
// Nil components fall back to the built-in defaults.
func NewPipeline(normalizer *Normalizer, tokenizer *Tokenizer) *Pipeline {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if tokenizer == nil {
		tokenizer = NewTokenizer(nil)
	}
	return &Pipeline{
		normalizer: normalizer,
		tokenizer:  tokenizer,
	}
}

// Normalizer returns the pipeline's normalizer.
func (p *Pipeline) Normalizer() *Normalizer { return p.normalizer }

// Tokenizer returns the pipeline's tokenizer.
func (p *Pipeline) Tokenizer() *Tokenizer { return p.tokenizer }

// Process prepares one record: the message is normalized and the clean text
// recomputed from it. The argument is passed by value and left untouched.
func (p *Pipeline) Process(r Record) Record {
	if r.Kind == KindOmitted {
		// already prepared; normalizing the display sentinel would demote it
		r.Message = Omitted
	} else {
		r.Message, r.Kind = p.normalizer.Classify(r.Message)
	}
	if r.Kind == KindOmitted {
		r.MessageClean = ""
	} else {
		r.MessageClean = p.tokenizer.Clean(r.Message, nil)
	}
	return r
}

// Prepare returns a new slice holding the processed copies of records, in
// the same order. The input slice is not modified.
func (p *Pipeline) Prepare(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = p.Process(r)
	}
	return out
}
