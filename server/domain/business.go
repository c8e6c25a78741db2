package domain

import (
	"strings"
	"unicode"
)

type BusinessProfile struct {
	Hostcode     string
	BusinessName string
	Slogan       string
	FlyerURL     string
}

// Business is the profile as embedded in a session, without its hostcode.
type Business struct {
	BusinessName string
	Slogan       string
	FlyerURL     string
}

func NewBusinessProfile(hostcode, businessName, slogan, flyerURL string) BusinessProfile {
	return BusinessProfile{
		Hostcode:     strings.TrimSpace(hostcode),
		BusinessName: businessName,
		Slogan:       slogan,
		FlyerURL:     flyerURL,
	}
}

func (p BusinessProfile) Business() Business {
	return Business{
		BusinessName: p.BusinessName,
		Slogan:       p.Slogan,
		FlyerURL:     p.FlyerURL,
	}
}

// Matches reports whether code resolves to this profile. Numeric codes are
// compared verbatim so leading zeros survive; anything else ignores case.
func (p BusinessProfile) Matches(code string) bool {
	key := LookupKey(code)
	if key == "" {
		return false
	}
	return LookupKey(p.Hostcode) == key
}

// LookupKey trims code and uppercases it unless it is all digits.
func LookupKey(code string) string {
	cleaned := strings.TrimSpace(code)
	if isNumeric(cleaned) {
		return cleaned
	}
	return strings.ToUpper(cleaned)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
