package notify

import (
	"fmt"
	"time"
)

const (
	KindPaymentReceipt      = "payment_receipt"
	KindInstallmentReminder = "installment_reminder"
	KindInstallmentOverdue  = "installment_overdue"
	KindMembershipExpiring  = "membership_expiring"
	KindWelcome             = "welcome"
)

const dateLayout = "Jan 2, 2006"

// FormatMoney renders minor units as "12.50 USD".
func FormatMoney(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}

func Welcome(to, name, packageName string, start, end time.Time) Message {
	return Message{
		Kind:    KindWelcome,
		To:      to,
		Name:    name,
		Subject: "Welcome to the gym",
		Body: fmt.Sprintf(`Hi %s,

Your %s membership is active from %s to %s.

See you on the floor!`, name, packageName, start.Format(dateLayout), end.Format(dateLayout)),
	}
}

func PaymentReceipt(to, name string, amountCents, remainingCents int64, currency, method string, paidAt time.Time) Message {
	return Message{
		Kind:    KindPaymentReceipt,
		To:      to,
		Name:    name,
		Subject: "Payment received",
		Body: fmt.Sprintf(`Hi %s,

We received your payment of %s (%s) on %s.
Remaining balance on this membership: %s.

Thank you!`, name, FormatMoney(amountCents, currency), method, paidAt.Format(dateLayout), FormatMoney(remainingCents, currency)),
	}
}

func InstallmentReminder(to, name string, sequence int, dueCents int64, currency string, due time.Time) Message {
	return Message{
		Kind:    KindInstallmentReminder,
		To:      to,
		Name:    name,
		Subject: fmt.Sprintf("Installment #%d due %s", sequence, due.Format(dateLayout)),
		Body: fmt.Sprintf(`Hi %s,

Installment #%d of %s is due on %s.
Please pay at the front desk or by transfer.`, name, sequence, FormatMoney(dueCents, currency), due.Format(dateLayout)),
	}
}

func InstallmentOverdue(to, name string, sequence int, outstandingCents, lateFeeCents int64, currency string, due time.Time) Message {
	return Message{
		Kind:    KindInstallmentOverdue,
		To:      to,
		Name:    name,
		Subject: fmt.Sprintf("Installment #%d is overdue", sequence),
		Body: fmt.Sprintf(`Hi %s,

Installment #%d was due on %s and is still open.
Outstanding: %s (includes late fee %s).`, name, sequence, due.Format(dateLayout), FormatMoney(outstandingCents, currency), FormatMoney(lateFeeCents, currency)),
	}
}

func MembershipExpiring(to, name, packageName string, end time.Time) Message {
	return Message{
		Kind:    KindMembershipExpiring,
		To:      to,
		Name:    name,
		Subject: "Your membership is about to expire",
		Body: fmt.Sprintf(`Hi %s,

Your %s membership ends on %s.
Ask the front desk about renewing.`, name, packageName, end.Format(dateLayout)),
	}
}
