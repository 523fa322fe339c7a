package domain

// Key types recorded on key mappings.
const (
	KeyTypeProduction = "PRODUCTION"
	KeyTypeSandbox    = "SANDBOX"
)

const (
	// OAuthVersion2 is the OAUTH_VERSION written for generated consumer keys.
	OAuthVersion2 = "OAuth-2.0"

	// KeyStateCompleted marks a key mapping whose key generation finished.
	KeyStateCompleted = "COMPLETED"
)

// ConsumerApp is the OAuth consumer record the identity server keeps for
// every generated consumer key (IDN_OAUTH_CONSUMER_APPS).
type ConsumerApp struct {
	ConsumerKey    string
	ConsumerSecret string
	Username       string
	TenantID       int64
	AppName        string
	OAuthVersion   string
	CallbackURL    string
	GrantTypes     string
}

// KeyMapping links an API manager application to its consumer key
// (AM_APPLICATION_KEY_MAPPING).
type KeyMapping struct {
	ApplicationID int64
	ConsumerKey   string
	KeyType       string
	State         string
}
