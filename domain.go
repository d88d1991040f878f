package urlkit

// IsDomain reports whether host is domain or one of its subdomains.
// ASCII letters are compared ignoring case.
//
//	IsDomain("www.example.com", "example.com") == true
//	IsDomain("notexample.com", "example.com") == false
func IsDomain(host, domain string) bool {
	if domain == "" {
		return host == ""
	}

	if len(host) < len(domain) {
		return false
	}

	off := len(host) - len(domain)

	if off != 0 && host[off-1] != '.' {
		return false
	}

	for i := 0; i < len(domain); i++ {
		if lower(domain[i]) != lower(host[off+i]) {
			return false
		}
	}

	return true
}

// IsDomain checks the URL host. A URL without host is in no domain.
func (u URL) IsDomain(domain string) bool {
	h, ok := u.host.Get()
	return ok && IsDomain(h, domain)
}
