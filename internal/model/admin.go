package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredential yönetici panelinin tek parolası (bcrypt)
type AdminCredential struct {
	PasswordHash string    `json:"passwordHash"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewAdminCredential(password string) (*AdminCredential, error) {
	cred := &AdminCredential{}
	if err := cred.SetPassword(password); err != nil {
		return nil, err
	}
	return cred, nil
}

func (a *AdminCredential) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashed)
	a.UpdatedAt = time.Now()
	return nil
}

func (a *AdminCredential) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}
