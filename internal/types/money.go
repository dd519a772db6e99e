// README: Currency shared by quotes and booking amounts.
package types

// CurrencyINR is the only currency quotes are issued in. Amounts are whole rupees.
const CurrencyINR = "INR"
