package urlkit

type SchemeType int

const (
	SchemeFile SchemeType = iota
	SchemeMail
	SchemeHTTP
	SchemeHTTPS
	SchemeFTP
	SchemeTelnet
	SchemeGopher
	SchemeLDAP
	SchemeRTSP
	SchemeRTP
	SchemeRTPUDP
	SchemeRTPTCP
	SchemeRTCP
	SchemeWS
	SchemeWSS
	SchemeNTP
	SchemeUnknown
)

// SchemeInfo describes one known scheme.
type SchemeInfo struct {
	Type  SchemeType
	Token string

	// Authority is true if the scheme is followed by //[userinfo@]host[:port].
	Authority   bool
	DefaultPort Optional[uint16]
}

// The first entry for a type is its canonical token.
var schemes = [...]SchemeInfo{
	{Type: SchemeFile, Token: "file"},
	{Type: SchemeMail, Token: "mailto"},
	{Type: SchemeHTTP, Token: "http", Authority: true, DefaultPort: Some[uint16](80)},
	{Type: SchemeHTTPS, Token: "https", Authority: true, DefaultPort: Some[uint16](443)},
	{Type: SchemeFTP, Token: "ftp", Authority: true, DefaultPort: Some[uint16](21)},
	{Type: SchemeTelnet, Token: "telnet", Authority: true, DefaultPort: Some[uint16](23)},
	{Type: SchemeGopher, Token: "gopher", Authority: true, DefaultPort: Some[uint16](70)},
	{Type: SchemeLDAP, Token: "ldap", Authority: true, DefaultPort: Some[uint16](389)},
	{Type: SchemeRTSP, Token: "rtsp", Authority: true, DefaultPort: Some[uint16](554)},
	{Type: SchemeRTP, Token: "rtp", Authority: true},
	{Type: SchemeRTPUDP, Token: "rtp+udp", Authority: true},
	{Type: SchemeRTPTCP, Token: "rtp+tcp", Authority: true},
	{Type: SchemeRTCP, Token: "rtcp", Authority: true},
	{Type: SchemeWS, Token: "ws", Authority: true, DefaultPort: Some[uint16](80)},
	{Type: SchemeWSS, Token: "wss", Authority: true, DefaultPort: Some[uint16](443)},
	{Type: SchemeNTP, Token: "ntp", Authority: true, DefaultPort: Some[uint16](123)},

	{Type: SchemeRTPUDP, Token: "rtp-udp", Authority: true},
	{Type: SchemeRTPTCP, Token: "rtp-tcp", Authority: true},
}

// LookupScheme finds the scheme by its token, ignoring case.
// Unknown tokens report SchemeUnknown and false.
func LookupScheme(token string) (SchemeInfo, bool) {
	if p := lookupScheme(token); p != nil {
		return *p, true
	}

	return SchemeInfo{Type: SchemeUnknown}, false
}

func lookupScheme(token string) *SchemeInfo {
	for i := range schemes {
		if Same(schemes[i].Token, token, false) {
			return &schemes[i]
		}
	}

	return nil
}

// Info returns the table entry of a known type.
func (t SchemeType) Info() (SchemeInfo, bool) {
	if p := t.info(); p != nil {
		return *p, true
	}

	return SchemeInfo{Type: SchemeUnknown}, false
}

func (t SchemeType) info() *SchemeInfo {
	if t < 0 || t >= SchemeUnknown {
		return nil
	}

	// canonical entries are laid out in type order
	return &schemes[t]
}

func (t SchemeType) String() string {
	if p := t.info(); p != nil {
		return p.Token
	}

	return "unknown"
}

func (t SchemeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
