package booking

import "github.com/hanksha/skillbridge-bff/model"

// View is a booking as the dashboards show it: decorated with its slot, its
// review and the actions the viewer may take. Slot and Review are always
// serialized, null meaning "slot pending" and "no review".
type View struct {
	model.Booking
	Slot    *model.Slot   `json:"slot"`
	Review  *model.Review `json:"review"`
	Actions []Action      `json:"actions"`
}
