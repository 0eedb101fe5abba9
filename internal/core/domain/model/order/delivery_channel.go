package order

import (
	"fmt"

	"fasttechfoods/internal/pkg/errs"
)

// DeliveryChannel represents how the customer receives the order.
type DeliveryChannel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown DeliveryChannel = iota

	// InStore is pickup at the counter.
	InStore

	// DriveThru is handover at the drive-through window.
	DriveThru

	// Delivery is delivery to the customer's address.
	Delivery
)

func getChannelStrings() map[DeliveryChannel]string {
	return map[DeliveryChannel]string{
		ChannelUnknown: "Unknown",
		InStore:        "InStore",
		DriveThru:      "DriveThru",
		Delivery:       "Delivery",
	}
}

// ChannelFromString parses the wire form of a delivery channel.
func ChannelFromString(s string) (DeliveryChannel, error) {
	for channel, str := range getChannelStrings() {
		if channel != ChannelUnknown && str == s {
			return channel, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryChannel",
		fmt.Errorf("%q is not a valid delivery channel", s),
	)
}

// String returns the wire form of the channel.
func (c DeliveryChannel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the channel is one of the defined channels.
func (c DeliveryChannel) Validate() error {
	if c != InStore && c != DriveThru && c != Delivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryChannel",
			fmt.Errorf("%d is not a valid delivery channel", c),
		)
	}
	return nil
}
