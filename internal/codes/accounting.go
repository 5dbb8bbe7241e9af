package codes

import "strconv"

// AccountingAccountTypeCode is the UNTDID 4455 accounting account type.
type AccountingAccountTypeCode int

const (
	AccountingAccountTypeUnknown    AccountingAccountTypeCode = 0
	AccountingAccountTypeFinancial  AccountingAccountTypeCode = 1
	AccountingAccountTypeSubsidiary AccountingAccountTypeCode = 2
	AccountingAccountTypeBudget     AccountingAccountTypeCode = 3
	AccountingAccountTypeCost       AccountingAccountTypeCode = 4
	AccountingAccountTypePayable    AccountingAccountTypeCode = 5
	AccountingAccountTypeJobCost    AccountingAccountTypeCode = 6
)

var accountingAccountTypeCodes = map[AccountingAccountTypeCode]struct{}{
	AccountingAccountTypeFinancial: {}, AccountingAccountTypeSubsidiary: {},
	AccountingAccountTypeBudget: {}, AccountingAccountTypeCost: {},
	AccountingAccountTypePayable: {}, AccountingAccountTypeJobCost: {},
}

// AccountingAccountTypeFromString maps a numeric code to an AccountingAccountTypeCode.
func AccountingAccountTypeFromString(s string) AccountingAccountTypeCode {
	n, err := strconv.Atoi(s)
	if err != nil {
		return AccountingAccountTypeUnknown
	}
	t := AccountingAccountTypeCode(n)
	if _, ok := accountingAccountTypeCodes[t]; !ok {
		return AccountingAccountTypeUnknown
	}
	return t
}

func (t AccountingAccountTypeCode) String() string {
	if t == AccountingAccountTypeUnknown {
		return ""
	}
	return strconv.Itoa(int(t))
}
