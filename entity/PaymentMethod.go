package entity

type PaymentMethod string

const (
	PayCashOnDelivery PaymentMethod = "cod"
	PayCard           PaymentMethod = "card"
	PayUPI            PaymentMethod = "upi"
	PayWallet         PaymentMethod = "wallet"
	PayNetBanking     PaymentMethod = "netbanking"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCashOnDelivery, PayCard, PayUPI, PayWallet, PayNetBanking:
		return true
	}
	return false
}

// fixed provider lists shown by the checkout UI
var WalletProviders = []string{"Paytm", "PhonePe", "Amazon Pay", "Mobikwik"}

var NetBankingBanks = []string{"SBI", "HDFC", "ICICI", "Axis", "Kotak"}

func ValidWallet(name string) bool {
	for _, w := range WalletProviders {
		if w == name {
			return true
		}
	}
	return false
}

func ValidBank(name string) bool {
	for _, b := range NetBankingBanks {
		if b == name {
			return true
		}
	}
	return false
}
