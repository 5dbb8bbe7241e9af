package codes

import "strconv"

// PaymentMeansType is the UNTDID 4461 payment means code.
type PaymentMeansType int

const (
	PaymentMeansUnknown                PaymentMeansType = 0
	PaymentMeansInCash                 PaymentMeansType = 10
	PaymentMeansCheque                 PaymentMeansType = 20
	PaymentMeansCreditTransfer         PaymentMeansType = 30
	PaymentMeansDebitTransfer          PaymentMeansType = 31
	PaymentMeansPaymentToBankAccount   PaymentMeansType = 42
	PaymentMeansBankCard               PaymentMeansType = 48
	PaymentMeansDirectDebit            PaymentMeansType = 49
	PaymentMeansStandingAgreement      PaymentMeansType = 57
	PaymentMeansSEPACreditTransfer     PaymentMeansType = 58
	PaymentMeansSEPADirectDebit        PaymentMeansType = 59
	PaymentMeansClearingBetweenParties PaymentMeansType = 97
)

var paymentMeansTypes = map[PaymentMeansType]struct{}{
	PaymentMeansInCash: {}, PaymentMeansCheque: {},
	PaymentMeansCreditTransfer: {}, PaymentMeansDebitTransfer: {},
	PaymentMeansPaymentToBankAccount: {}, PaymentMeansBankCard: {},
	PaymentMeansDirectDebit: {}, PaymentMeansStandingAgreement: {},
	PaymentMeansSEPACreditTransfer: {}, PaymentMeansSEPADirectDebit: {},
	PaymentMeansClearingBetweenParties: {},
}

// PaymentMeansFromString maps a numeric UNTDID 4461 code to a PaymentMeansType.
func PaymentMeansFromString(s string) PaymentMeansType {
	n, err := strconv.Atoi(s)
	if err != nil {
		return PaymentMeansUnknown
	}
	t := PaymentMeansType(n)
	if _, ok := paymentMeansTypes[t]; !ok {
		return PaymentMeansUnknown
	}
	return t
}

func (t PaymentMeansType) String() string {
	if t == PaymentMeansUnknown {
		return ""
	}
	return strconv.Itoa(int(t))
}
