package core

import "errors"

// ExpenseCategory classifies an expense for reporting and tax preparation.
type ExpenseCategory string

const (
	CategoryRent           ExpenseCategory = "rent"
	CategoryUtilities      ExpenseCategory = "utilities"
	CategorySubscriptions  ExpenseCategory = "subscriptions"
	CategoryGroceries      ExpenseCategory = "groceries"
	CategoryTransportation ExpenseCategory = "transportation"
	CategoryInsurance      ExpenseCategory = "insurance"
	CategoryMedical        ExpenseCategory = "medical"
	CategoryDining         ExpenseCategory = "dining"
	CategoryEntertainment  ExpenseCategory = "entertainment"
	CategoryEducation      ExpenseCategory = "education"
	CategoryOfficeSupplies ExpenseCategory = "office_supplies"
	CategoryCommunication  ExpenseCategory = "communication"
	CategoryTaxPayment     ExpenseCategory = "tax_payment"
	CategoryPension        ExpenseCategory = "pension"
	CategoryOther          ExpenseCategory = "other"
)

// PaymentMethod records how an expense was paid.
type PaymentMethod string

const (
	PayCash             PaymentMethod = "cash"
	PayBankTransfer     PaymentMethod = "bank_transfer"
	PayCreditCard       PaymentMethod = "credit_card"
	PayDebitCard        PaymentMethod = "debit_card"
	PayConvenienceStore PaymentMethod = "convenience_store"
	PayDirectDebit      PaymentMethod = "direct_debit"
	PayOther            PaymentMethod = "other"
)

// RecurrenceType marks an expense as repeating. The tag is informational;
// no rows are generated from it.
type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
)

var (
	ErrNegativeAmount       = errors.New("negative amount")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrUnknownRecurrence    = errors.New("unknown recurrence")
)

// Expense is a single outgoing payment. Amounts are whole yen.
type Expense struct {
	ID         int64 // 0 until stored
	Amount     int64
	Category   ExpenseCategory
	Date       Date
	Method     PaymentMethod
	Recurrence RecurrenceType
	Notes      string
}

func (e Expense) Validate() error {
	if e.Amount < 0 {
		return ErrNegativeAmount
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if !e.Category.Valid() {
		return ErrUnknownCategory
	}
	if !e.Method.Valid() {
		return ErrUnknownPaymentMethod
	}
	if !e.Recurrence.Valid() {
		return ErrUnknownRecurrence
	}
	return nil
}

// IsRecurring reports whether the expense repeats on a schedule.
func (e Expense) IsRecurring() bool {
	return e.Recurrence != RecurrenceNone
}

// ExpenseCategories lists every category in declaration order. Breakdown
// builders iterate this slice so that output order stays deterministic.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryRent,
		CategoryUtilities,
		CategorySubscriptions,
		CategoryGroceries,
		CategoryTransportation,
		CategoryInsurance,
		CategoryMedical,
		CategoryDining,
		CategoryEntertainment,
		CategoryEducation,
		CategoryOfficeSupplies,
		CategoryCommunication,
		CategoryTaxPayment,
		CategoryPension,
		CategoryOther,
	}
}

var expenseCategoryLabels = map[ExpenseCategory]string{
	CategoryRent:           "家賃 (Rent)",
	CategoryUtilities:      "光熱費 (Utilities)",
	CategorySubscriptions:  "サブスク (Subscriptions)",
	CategoryGroceries:      "食料品 (Groceries)",
	CategoryTransportation: "交通費 (Transportation)",
	CategoryInsurance:      "保険 (Insurance)",
	CategoryMedical:        "医療費 (Medical)",
	CategoryDining:         "外食 (Dining)",
	CategoryEntertainment:  "娯楽 (Entertainment)",
	CategoryEducation:      "教育 (Education)",
	CategoryOfficeSupplies: "事務用品 (Office Supplies)",
	CategoryCommunication:  "通信費 (Communication)",
	CategoryTaxPayment:     "税金 (Tax Payment)",
	CategoryPension:        "年金 (Pension)",
	CategoryOther:          "その他 (Other)",
}

// Label returns the bilingual display label, e.g. "家賃 (Rent)".
func (c ExpenseCategory) Label() string {
	if l, ok := expenseCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c ExpenseCategory) Valid() bool {
	_, ok := expenseCategoryLabels[c]
	return ok
}

var paymentMethodLabels = map[PaymentMethod]string{
	PayCash:             "Cash",
	PayBankTransfer:     "Bank Transfer",
	PayCreditCard:       "Credit Card",
	PayDebitCard:        "Debit Card",
	PayConvenienceStore: "Convenience Store",
	PayDirectDebit:      "Direct Debit",
	PayOther:            "Other",
}

// Label returns the display label, e.g. "Bank Transfer".
func (m PaymentMethod) Label() string {
	if l, ok := paymentMethodLabels[m]; ok {
		return l
	}
	return string(m)
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

var recurrenceLabels = map[RecurrenceType]string{
	RecurrenceNone:    "None",
	RecurrenceMonthly: "Monthly",
	RecurrenceYearly:  "Yearly",
}

// Label returns the display label, e.g. "Monthly".
func (r RecurrenceType) Label() string {
	if l, ok := recurrenceLabels[r]; ok {
		return l
	}
	return string(r)
}

func (r RecurrenceType) Valid() bool {
	_, ok := recurrenceLabels[r]
	return ok
}
