package helpers

// Response messages on the wire contract; clients match on them verbatim.
const (
	MsgUnauthorized = "Unauthorized Access"
	MsgForbidden    = "Forbidden Access"
	MsgUserExists   = "User already exists."
)

type TokenResponse struct {
	Token string `json:"token"`
}
