package corrector

// MaxRepairDistance is the largest edit distance at which an unknown
// token is repaired to a vocabulary word.
const MaxRepairDistance = 2

// Distance returns the Levenshtein distance between a and b, counted
// in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// Closest returns the vocabulary word nearest to word. An exact match
// is returned as is. Otherwise the first of the nearest candidates,
// in the order given, wins, provided it is within MaxRepairDistance.
// When nothing is close enough word itself is returned with false.
func Closest(word string, vocabulary []string) (string, bool) {
	best, bestDist := word, MaxRepairDistance+1
	for _, v := range vocabulary {
		if v == word {
			return word, true
		}
		if d := Distance(word, v); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, bestDist <= MaxRepairDistance
}
