// Package confirmations asks the user to approve store changes.
package confirmations

// Confirmer approves or declines a change. items lists what the change
// touches and is shown to the user before the prompt.
type Confirmer interface {
	Confirm(prompt string, items []string) (bool, error)
}

// Static answers every confirmation the same way and records what it was asked
type Static struct {
	Answer bool
	Err    error

	Prompts []string
	Items   [][]string
}

// Confirm implements Confirmer
func (s *Static) Confirm(prompt string, items []string) (bool, error) {
	s.Prompts = append(s.Prompts, prompt)
	s.Items = append(s.Items, items)
	if s.Err != nil {
		return false, s.Err
	}
	return s.Answer, nil
}
