// Package entity defines the dimensional model of the trading simulation:
// reference dimensions, the calendar dimension, fact rows and the
// candlestick time series. All types are plain value records; foreign
// references are stored as keys, never as live object graphs.
package entity

import "fmt"

// UnknownEnumError is returned when a canonical string does not decode to
// a member of its closed enum set.
type UnknownEnumError struct {
	Enum  string
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Enum, e.Value)
}

// AssetType identifies a tradeable instrument by its ticker-like code.
type AssetType string

const (
	AssetWIN AssetType = "WIN$" // Mini Índice
	AssetWDO AssetType = "WDO$" // Mini Dólar
)

// AssetTypes lists every member in declaration order.
func AssetTypes() []AssetType {
	return []AssetType{AssetWIN, AssetWDO}
}

func (a AssetType) Valid() bool {
	switch a {
	case AssetWIN, AssetWDO:
		return true
	}
	return false
}

// ParseAssetType decodes the canonical code, failing on unknown input.
func ParseAssetType(s string) (AssetType, error) {
	a := AssetType(s)
	if !a.Valid() {
		return "", &UnknownEnumError{Enum: "asset type", Value: s}
	}
	return a, nil
}

// TimeFrame is the bar resolution. It doubles as the natural key of the
// time-frame dimension, so values are compared structurally.
type TimeFrame string

const (
	TimeFrameM1  TimeFrame = "m1"
	TimeFrameM5  TimeFrame = "m5"
	TimeFrameM15 TimeFrame = "m15"
	TimeFrameM30 TimeFrame = "m30"
	TimeFrameH1  TimeFrame = "H1"
	TimeFrameH4  TimeFrame = "H4"
	TimeFrameD1  TimeFrame = "D1"
	TimeFrameW1  TimeFrame = "W1"
)

// TimeFrames lists every member from the finest to the coarsest resolution.
func TimeFrames() []TimeFrame {
	return []TimeFrame{
		TimeFrameM1, TimeFrameM5, TimeFrameM15, TimeFrameM30,
		TimeFrameH1, TimeFrameH4, TimeFrameD1, TimeFrameW1,
	}
}

func (tf TimeFrame) Valid() bool {
	return tf.ordinal() >= 0
}

// ordinal returns the position of tf within the declared order, or -1.
func (tf TimeFrame) ordinal() int {
	for i, v := range TimeFrames() {
		if tf == v {
			return i
		}
	}
	return -1
}

// Compare orders time frames from finest (m1) to coarsest (W1).
// Unknown values sort before every valid one.
func (tf TimeFrame) Compare(other TimeFrame) int {
	a, b := tf.ordinal(), other.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ParseTimeFrame decodes the canonical value, failing on unknown input.
func ParseTimeFrame(s string) (TimeFrame, error) {
	tf := TimeFrame(s)
	if !tf.Valid() {
		return "", &UnknownEnumError{Enum: "time frame", Value: s}
	}
	return tf, nil
}

// DirectionType is the trade direction.
type DirectionType string

const (
	DirectionLong  DirectionType = "long"
	DirectionShort DirectionType = "short"
	DirectionWait  DirectionType = "wait"
)

func (d DirectionType) Valid() bool {
	switch d {
	case DirectionLong, DirectionShort, DirectionWait:
		return true
	}
	return false
}

func ParseDirectionType(s string) (DirectionType, error) {
	d := DirectionType(s)
	if !d.Valid() {
		return "", &UnknownEnumError{Enum: "direction type", Value: s}
	}
	return d, nil
}

// ActionType is what the agent does with a position.
type ActionType string

const (
	ActionHold  ActionType = "hold"
	ActionOpen  ActionType = "open"
	ActionClose ActionType = "close"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionHold, ActionOpen, ActionClose:
		return true
	}
	return false
}

func ParseActionType(s string) (ActionType, error) {
	a := ActionType(s)
	if !a.Valid() {
		return "", &UnknownEnumError{Enum: "action type", Value: s}
	}
	return a, nil
}

// OrderType is the order kind placed at a venue.
type OrderType string

const (
	OrderMarket OrderType = "market"
	OrderLimit  OrderType = "limit"
	OrderStop   OrderType = "stop"
)

func (o OrderType) Valid() bool {
	switch o {
	case OrderMarket, OrderLimit, OrderStop:
		return true
	}
	return false
}

func ParseOrderType(s string) (OrderType, error) {
	o := OrderType(s)
	if !o.Valid() {
		return "", &UnknownEnumError{Enum: "order type", Value: s}
	}
	return o, nil
}

// OrderStatus is the lifecycle state of an order fact.
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusFilled          OrderStatus = "filled"
	OrderStatusCanceled        OrderStatus = "canceled"
	OrderStatusRejected        OrderStatus = "rejected"
	OrderStatusPartiallyFilled OrderStatus = "partially_filled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusFilled, OrderStatusCanceled,
		OrderStatusRejected, OrderStatusPartiallyFilled:
		return true
	}
	return false
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.Valid() {
		return "", &UnknownEnumError{Enum: "order status", Value: s}
	}
	return st, nil
}
