package form

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// commonDomains are the mail domains typos are checked against.
var commonDomains = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"icloud.com",
	"proton.me",
	"company.com",
}

const maxSuggestDistance = 2

// SuggestEmail proposes a corrected address when the domain is a near miss of
// a common mail domain. The hint is advisory and never affects validity.
func SuggestEmail(value string) (string, bool) {
	at := strings.LastIndex(value, "@")
	if at <= 0 || at == len(value)-1 {
		return "", false
	}
	local, domain := value[:at], strings.ToLower(value[at+1:])

	best, bestDist := "", maxSuggestDistance+1
	for _, d := range commonDomains {
		if d == domain {
			return "", false
		}
		dist := levenshtein.ComputeDistance(domain, d)
		if dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if best == "" {
		return "", false
	}
	return local + "@" + best, true
}
