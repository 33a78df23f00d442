package polaris

// DeliveryOption identifies the channel a patron receives notices on.
// The numeric values are the Polaris DeliveryOptions ids and appear
// verbatim in the exported tables.
type DeliveryOption int

const (
	DeliveryMail  DeliveryOption = 1
	DeliveryEmail DeliveryOption = 2
	DeliveryVoice DeliveryOption = 3
	DeliverySMS   DeliveryOption = 8
)

// RequiresEmail reports whether a patron with this delivery option must
// have a non-empty email address on file.
func (d DeliveryOption) RequiresEmail() bool {
	return d == DeliveryEmail
}

// RequiresPhone reports whether a patron with this delivery option must
// have a non-empty phone number on file.
func (d DeliveryOption) RequiresPhone() bool {
	return d == DeliveryVoice || d == DeliverySMS
}

// PhoneChannel reports whether notices on this option are dispatched through
// the external phone/text batch system. Only these rows enter the
// notification queue; email and mail notices are delivered directly.
func (d DeliveryOption) PhoneChannel() bool {
	return d == DeliveryVoice || d == DeliverySMS
}

func (d DeliveryOption) String() string {
	switch d {
	case DeliveryMail:
		return "Mail"
	case DeliveryEmail:
		return "Email"
	case DeliveryVoice:
		return "Voice"
	case DeliverySMS:
		return "SMS"
	default:
		return "Unknown"
	}
}
