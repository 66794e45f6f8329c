package payment

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusPending, nil
	}
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Method string

const (
	// MethodWallet debits the payer's balance.
	MethodWallet Method = "saldo"
	// MethodQRApp is the default for paying a reservation from the app.
	MethodQRApp Method = "qr_app"
	// MethodQR is the default for manually recorded payments.
	MethodQR Method = "qr"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsWallet() bool {
	return m == MethodWallet
}

const WalletProviderRef = "WALLET-APP"
