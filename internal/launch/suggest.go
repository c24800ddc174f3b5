package launch

import (
	"sort"
	"strings"
)

const (
	maxSuggestions        = 3
	maxSuggestionDistance = 2
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// SimilarCommands returns up to maxResults catalog commands close to input,
// nearest first. Case differences count as a near miss.
func SimilarCommands(input string, maxResults int) []string {
	var found []suggestion
	for _, info := range catalog {
		name := string(info.Command)
		if name == input {
			continue
		}
		dist := levenshtein(input, name)
		if dist <= maxSuggestionDistance && dist < len(name) {
			found = append(found, suggestion{name: name, distance: dist})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].name < found[j].name
	})

	if len(found) > maxResults {
		found = found[:maxResults]
	}

	names := make([]string, len(found))
	for i, s := range found {
		names[i] = s.name
	}
	return names
}
