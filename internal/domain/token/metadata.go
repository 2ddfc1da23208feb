// internal/domain/token/metadata.go
package token

// Metadata is the off-chain token metadata resolved before instruction
// construction. Icon carries the raw bytes fetched from the request's
// iconUrl; the protocol client pins the whole object and returns a metadata
// URI.
type Metadata struct {
	Name        string
	Symbol      string
	Description string
	Icon        []byte
	IconName    string // filename hint for the multipart upload
}
