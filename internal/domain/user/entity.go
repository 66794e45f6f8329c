package user

import (
	"errors"
	"time"

	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/patch"
	"estaciona-api/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount cannot be negative")
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	role         Role
	balance      money.Amount
	profile      Profile
	createdAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role, profile Profile, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		profile:      profile,
		createdAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	role Role,
	balance money.Amount,
	profile Profile,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		balance:      balance,
		profile:      profile,
		createdAt:    createdAt,
	}
}

// Debit withdraws amount from the wallet, refusing to go below zero.
func (u *User) Debit(amount money.Amount) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if u.balance < amount {
		return ErrInsufficientBalance
	}
	u.balance = u.balance.Sub(amount)
	return nil
}

// Attributes is the editable surface of a user. Partial updates are copied
// onto it and validated back through Update.
type Attributes struct {
	Name    string
	Email   string
	Role    string
	Balance money.Amount
	DNI     *string
	Phone   *string
	Plate   *string
	Gender  *string
}

func (u *User) Attributes() Attributes {
	return Attributes{
		Name:    u.name.String(),
		Email:   u.email.Value(),
		Role:    u.role.String(),
		Balance: u.balance,
		DNI:     ptr.Clone(u.profile.DNI),
		Phone:   ptr.Clone(u.profile.Phone),
		Plate:   ptr.Clone(u.profile.Plate),
		Gender:  ptr.Clone(u.profile.Gender),
	}
}

// Update applies changes (any struct with optional fields named like
// Attributes) after validating the merged result.
func (u *User) Update(changes any) error {
	attrs := u.Attributes()
	if err := patch.Apply(&attrs, changes); err != nil {
		return err
	}

	name, err := NewName(attrs.Name)
	if err != nil {
		return err
	}
	email, err := NewEmail(attrs.Email)
	if err != nil {
		return err
	}
	role, err := NewRole(attrs.Role)
	if err != nil {
		return err
	}

	u.name = name
	u.email = email
	u.role = role
	u.balance = attrs.Balance
	u.profile = Profile{DNI: attrs.DNI, Phone: attrs.Phone, Plate: attrs.Plate, Gender: attrs.Gender}
	return nil
}

func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() Name            { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Balance() money.Amount { return u.balance }
func (u *User) Profile() Profile      { return u.profile }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
