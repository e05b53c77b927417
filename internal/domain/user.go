package domain

// DocTypeUser is the partition discriminator for user documents.
const DocTypeUser = "user"

// User is the account record stored in the document container. The password
// hash never leaves the server; it is redacted from every JSON encoding.
type User struct {
	ID           string `json:"id"`
	PasswordHash string `json:"-"`
	Type         string `json:"type"`
}
