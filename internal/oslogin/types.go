package oslogin

import (
	"fmt"

	"golang.org/x/crypto/ssh"
)

// Profile models the OS Login loginProfile resource, scoped to the fields
// the SECURITY_KEY view returns.
type Profile struct {
	Name          string         `json:"name"`
	PosixAccounts []PosixAccount `json:"posixAccounts"`
	SecurityKeys  []SecurityKey  `json:"securityKeys"`
}

// PosixAccount is one UNIX account record attached to a cloud identity.
type PosixAccount struct {
	Primary             bool   `json:"primary"`
	Username            string `json:"username"`
	UID                 int64  `json:"uid,string,omitempty"`
	GID                 int64  `json:"gid,string,omitempty"`
	HomeDirectory       string `json:"homeDirectory,omitempty"`
	OperatingSystemType string `json:"operatingSystemType,omitempty"`
}

// SecurityKey is the SSH key pair held on one registered security key
// device. The private key alone is not usable without physical possession
// of the device.
type SecurityKey struct {
	PrivateKey         string              `json:"privateKey"`
	PublicKey          string              `json:"publicKey,omitempty"`
	DeviceNickname     string              `json:"deviceNickname,omitempty"`
	UniversalTwoFactor *UniversalTwoFactor `json:"universalTwoFactor,omitempty"`
	WebAuthn           *WebAuthn           `json:"webAuthn,omitempty"`
}

// UniversalTwoFactor carries the U2F protocol metadata for a key.
type UniversalTwoFactor struct {
	AppID string `json:"appId"`
}

// WebAuthn carries the WebAuthn protocol metadata for a key.
type WebAuthn struct {
	RPID string `json:"rpId"`
}

// Username returns the username of the first posix account.
// The service lists the primary account first; callers that need a login
// name use this one.
func (p *Profile) Username() string {
	if len(p.PosixAccounts) == 0 {
		return ""
	}
	return p.PosixAccounts[0].Username
}

// Fingerprint parses the key's public half and returns its SHA256
// fingerprint in the ssh-keygen format ("SHA256:<base64>").
func (k *SecurityKey) Fingerprint() (string, error) {
	if k.PublicKey == "" {
		return "", fmt.Errorf("security key has no public key")
	}
	pub, _, _, _, err := ssh.ParseAuthorizedKey([]byte(k.PublicKey))
	if err != nil {
		return "", fmt.Errorf("parse public key: %w", err)
	}
	return ssh.FingerprintSHA256(pub), nil
}
