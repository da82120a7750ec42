package validator

import (
	"encoding/json"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// Display name form: "Name <local@domain>"
	displayNameRegex = regexp.MustCompile(`^([^<>]*)<([^<>]+)>$`)

	mobilePhoneRegexes = map[string]*regexp.Regexp{
		"en-US": regexp.MustCompile(`^(\+?1)?[2-9]\d{2}[2-9]\d{6}$`),
		"en-GB": regexp.MustCompile(`^(\+?44|0)7\d{9}$`),
		"en-IN": regexp.MustCompile(`^(\+?91|0)?[789]\d{9}$`),
		"de-DE": regexp.MustCompile(`^(\+?49[ .\-])?([(][0-9]{1,6}[)])?([0-9 .\-/]{3,20})((x|ext|extension)[ ]?[0-9]{1,4})?$`),
		"fr-FR": regexp.MustCompile(`^(\+?33|0)[67]\d{8}$`),
		"ru-RU": regexp.MustCompile(`^(\+?7|8)?9\d{9}$`),
		"uk-UA": regexp.MustCompile(`^(\+?38|8)?0\d{9}$`),
		"zh-CN": regexp.MustCompile(`^(\+?0?86-?)?1[345789]\d{9}$`),
	}

	defaultURLProtocols = []string{"http", "https", "ftp"}
)

// EmailOptions tunes IsEmail.
type EmailOptions struct {
	// AllowDisplayName accepts "Display Name <local@domain>".
	AllowDisplayName bool
	// RequireDisplayName rejects bare addresses and blank display names.
	RequireDisplayName bool
}

// URLOptions tunes IsURL. The zero value accepts http, https and ftp URLs
// with an optional protocol and a mandatory top-level domain.
type URLOptions struct {
	Protocols       []string
	RequireProtocol bool
	AllowNoTLD      bool
}

// FQDNOptions tunes IsFQDN. The zero value requires a top-level domain.
type FQDNOptions struct {
	AllowNoTLD       bool
	AllowTrailingDot bool
}

// IsEmail reports whether str is an email address.
func IsEmail(str string, opts ...EmailOptions) bool {
	var o EmailOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	addr := str
	if o.AllowDisplayName || o.RequireDisplayName {
		if m := displayNameRegex.FindStringSubmatch(str); m != nil {
			if o.RequireDisplayName && strings.TrimSpace(m[1]) == "" {
				return false
			}
			addr = strings.TrimSpace(m[2])
		} else if o.RequireDisplayName {
			return false
		}
	}
	return playground(addr, "email")
}

// IsURL reports whether str is a URL.
func IsURL(str string, opts ...URLOptions) bool {
	var o URLOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	protocols := o.Protocols
	if len(protocols) == 0 {
		protocols = defaultURLProtocols
	}

	if str == "" || len(str) >= 2083 || strings.ContainsAny(str, " \t\r\n") {
		return false
	}
	if strings.HasPrefix(strings.ToLower(str), "mailto:") {
		return false
	}

	raw := str
	hasProtocol := strings.Contains(str, "://")
	if !hasProtocol {
		if o.RequireProtocol {
			return false
		}
		raw = "http://" + str
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	if hasProtocol && !slices.Contains(protocols, strings.ToLower(u.Scheme)) {
		return false
	}
	if port := u.Port(); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return false
		}
	}

	host := u.Hostname()
	return IsIP(host) || IsFQDN(host, FQDNOptions{AllowNoTLD: o.AllowNoTLD})
}

// IsFQDN reports whether str is a fully qualified domain name.
func IsFQDN(str string, opts ...FQDNOptions) bool {
	var o FQDNOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.AllowTrailingDot {
		str = strings.TrimSuffix(str, ".")
	} else if strings.HasSuffix(str, ".") {
		return false
	}
	if o.AllowNoTLD {
		return playground(str, "hostname_rfc1123")
	}
	return playground(str, "fqdn")
}

// IsIP reports whether str is an IP address. Version 4 or 6 narrows the
// check; anything else accepts both.
func IsIP(str string, version ...int) bool {
	v := 0
	if len(version) > 0 {
		v = version[0]
	}
	switch v {
	case 4:
		return playground(str, "ipv4")
	case 6:
		return playground(str, "ipv6")
	default:
		return playground(str, "ip")
	}
}

func IsMACAddress(str string) bool {
	return playground(str, "mac")
}

func IsBase64(str string) bool {
	return playground(str, "base64")
}

func IsHexadecimal(str string) bool {
	return playground(str, "hexadecimal")
}

// IsHexColor reports whether str is a hex color; the leading # is optional.
func IsHexColor(str string) bool {
	if str == "" {
		return false
	}
	if !strings.HasPrefix(str, "#") {
		str = "#" + str
	}
	return playground(str, "hexcolor")
}

// IsJSON reports whether str is a JSON object or array.
func IsJSON(str string) bool {
	var v any
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return false
	}
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// IsMobilePhone reports whether str is a mobile number for locale.
// An empty locale or "any" accepts E.164 numbers; unknown locales never match.
func IsMobilePhone(str string, locale ...string) bool {
	loc := ""
	if len(locale) > 0 {
		loc = locale[0]
	}
	if loc == "" || loc == "any" {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(str)
		if !strings.HasPrefix(cleaned, "+") {
			cleaned = "+" + cleaned
		}
		return playground(cleaned, "e164")
	}
	re, ok := mobilePhoneRegexes[loc]
	if !ok {
		return false
	}
	return re.MatchString(str)
}

// IsLatLong reports whether str is a "latitude,longitude" pair.
func IsLatLong(str string) bool {
	lat, long, ok := strings.Cut(str, ",")
	if !ok {
		return false
	}
	lat = strings.TrimPrefix(strings.TrimSpace(lat), "(")
	long = strings.TrimSuffix(strings.TrimSpace(long), ")")
	return playground(lat, "latitude") && playground(long, "longitude")
}

func IsSemVer(str string) bool {
	return playground(str, "semver")
}
