// Package labels holds the closed set of skin-concern labels a catalog record
// may carry, and the helpers that map free text onto it.
package labels

import "strings"

var Allowed = []string{
	"Whiteheads", "Blackheads", "Cystic acne", "Hormonal breakouts", "Acne scarring",
	"Textured skin", "Large pores", "Hyperpigmentation", "Post-inflammatory hyperpigmentation",
	"Melasma", "Uneven skin tone", "Wrinkles", "Fine lines", "Oily skin", "Dry skin",
	"Combination skin", "Normal skin",
}

var byKey = func() map[string]string {
	m := make(map[string]string, len(Allowed))
	for _, l := range Allowed {
		m[key(l)] = strings.ToLower(l)
	}
	return m
}()

// PromptList renders the allowed set for the generation instruction.
func PromptList() string {
	return strings.Join(Allowed, ", ")
}

// key folds case and hyphens so "post-inflammatory" and "Post inflammatory" compare equal.
func key(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

func norm(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", " ")
}

// Match returns the allowed labels whose name occurs in the title or raw
// text, in allowed-set order, lowercase and comma-joined. "" when none match.
func Match(title, rawText string) string {
	text := norm(title + " " + rawText)
	var matched []string
	for _, l := range Allowed {
		if strings.Contains(text, norm(l)) {
			matched = append(matched, strings.ToLower(l))
		}
	}
	return strings.Join(matched, ",")
}

// Sanitize keeps the entries of a comma-separated label list that belong to
// the allowed set, lowercased, de-duplicated, in their original order.
func Sanitize(list string) string {
	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(list, ",") {
		l, ok := byKey[key(part)]
		if !ok || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return strings.Join(out, ",")
}

// Unknown returns the entries of a comma-separated list that are not allowed labels.
func Unknown(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := byKey[key(part)]; !ok {
			out = append(out, part)
		}
	}
	return out
}
