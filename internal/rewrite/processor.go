package rewrite

import "fmt"

// Processor applies its rules in order to whole documents.
type Processor struct {
	rules []*Rule
}

// NewProcessor returns a processor for rules. Without rules it uses
// [DefaultRules].
func NewProcessor(rules ...*Rule) *Processor {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	return &Processor{rules: rules}
}

func (p *Processor) Name() string {
	return "rewrite"
}

// Process rewrites source and returns the result with the total number of
// replacements.
func (p *Processor) Process(_ string, source []byte) ([]byte, int, error) {
	text := string(source)
	total := 0

	for _, rule := range p.rules {
		var (
			count int
			err   error
		)

		text, count, err = rule.Apply(text)
		if err != nil {
			return nil, 0, fmt.Errorf("rule %q: %w", rule.Pattern, err)
		}

		total += count
	}

	if total == 0 {
		return source, 0, nil
	}

	return []byte(text), total, nil
}
