package enum

// PaymentMethod is the instrument used to settle a sale or payment.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodDebitCard     PaymentMethod = "debit_card"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodOnlinePayment PaymentMethod = "online_payment"
	PaymentMethodMobilePayment PaymentMethod = "mobile_payment"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is one of the known methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodOnlinePayment, PaymentMethodMobilePayment:
		return true
	}
	return false
}
