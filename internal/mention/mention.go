// Package mention parses @name tokens out of free text and matches them
// against an organization's user roster.
package mention

import (
	"regexp"
	"strings"

	"dooo/internal/model"
)

// The AI assistant is a pseudo-user: it belongs to no organization and is
// offered as a candidate whenever its name matches the typed token.
const (
	AssistantID   = "dooo-ai"
	AssistantName = "Dooo"
)

var (
	trailingRe = regexp.MustCompile(`@(\w*)$`)
	tokenRe    = regexp.MustCompile(`@(\w+)`)
	urlRe      = regexp.MustCompile(`https?://\S+`)
)

// Trailing returns the token of an @-mention being typed at the end of the
// input, possibly empty (a bare "@").
func Trailing(text string) (string, bool) {
	m := trailingRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// All returns every completed @name token in the text, in order.
func All(text string) []string {
	var names []string
	for _, m := range tokenRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}

// Candidates filters the roster by case-insensitive name prefix, dropping the
// actor and anyone outside the actor's organization. The assistant pseudo-user
// joins the pool whenever its name matches, regardless of organization.
func Candidates(token string, roster []model.User, self model.User) []model.User {
	q := strings.ToLower(token)
	var out []model.User
	for _, u := range roster {
		if u.ID == self.ID || u.OrganizationID != self.OrganizationID {
			continue
		}
		if strings.HasPrefix(strings.ToLower(u.Name), q) {
			out = append(out, u)
		}
	}
	if strings.HasPrefix(strings.ToLower(AssistantName), q) {
		out = append(out, model.User{ID: AssistantID, Name: AssistantName})
	}
	return out
}

type Kind int

const (
	// None: no candidate, no UI affordance.
	None Kind = iota
	// Hint: exactly one candidate; show the remaining letters inline.
	Hint
	// Dropdown: two or more candidates; show a navigable list.
	Dropdown
)

type Resolution struct {
	Kind       Kind
	Remaining  string
	Candidates []model.User
}

// Resolve applies the disambiguation policy to the trailing token.
func Resolve(token string, roster []model.User, self model.User) Resolution {
	cands := Candidates(token, roster, self)
	switch len(cands) {
	case 0:
		return Resolution{Kind: None}
	case 1:
		return Resolution{
			Kind:       Hint,
			Remaining:  cands[0].Name[len(token):],
			Candidates: cands,
		}
	default:
		return Resolution{Kind: Dropdown, Candidates: cands}
	}
}

// Accept removes the raw trailing @token from the input buffer once a mention
// has been resolved. The resolved name is tracked by the caller and merged
// into assigned_to at submit time.
func Accept(text string) (string, bool) {
	loc := trailingRe.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + text[loc[1]:], true
}

// ExtractLinks pulls http(s) URLs out of the text, returning the stripped text
// and the links in order of appearance.
func ExtractLinks(text string) (string, []string) {
	links := urlRe.FindAllString(text, -1)
	if links == nil {
		return text, nil
	}
	clean := strings.TrimSpace(urlRe.ReplaceAllString(text, ""))
	return clean, links
}
