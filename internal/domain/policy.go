package domain

// Capability is an action guarded by the policy
type Capability string

const (
	CapManageSchedule         Capability = "schedule.manage"
	CapManageServices         Capability = "services.manage"
	CapCreateBooking          Capability = "booking.create"
	CapViewClientBookings     Capability = "booking.view_client"
	CapViewProfessionalAgenda Capability = "booking.view_professional"
	CapCompleteBooking        Capability = "booking.complete"
	CapCancelAsClient         Capability = "booking.cancel_client"
	CapCancelAsProfessional   Capability = "booking.cancel_professional"
	CapSubmitReview           Capability = "review.submit"
	CapApplyVerification      Capability = "verification.apply"
	CapReviewVerifications    Capability = "verification.review"
)

// rule describes who holds a capability.
// role must match; when owned is set the actor must also be the owner.
// Admins pass every rule with adminOverride.
type rule struct {
	role          Role
	owned         bool
	adminOverride bool
}

var policy = map[Capability]rule{
	CapManageSchedule:         {role: RoleProfessional, owned: true},
	CapManageServices:         {role: RoleProfessional, owned: true},
	CapCreateBooking:          {role: RoleClient, owned: true},
	CapViewClientBookings:     {role: RoleClient, owned: true, adminOverride: true},
	CapViewProfessionalAgenda: {role: RoleProfessional, owned: true, adminOverride: true},
	CapCompleteBooking:        {role: RoleProfessional, owned: true},
	CapCancelAsClient:         {role: RoleClient, owned: true, adminOverride: true},
	CapCancelAsProfessional:   {role: RoleProfessional, owned: true, adminOverride: true},
	CapSubmitReview:           {role: RoleClient, owned: true},
	CapApplyVerification:      {role: RoleProfessional, owned: true},
	CapReviewVerifications:    {role: RoleAdmin},
}

// Can decides whether actor may use capability on a resource owned by ownerID.
// ownerID is ignored for capabilities that are not owner-bound.
func Can(actor Actor, capability Capability, ownerID string) bool {
	r, ok := policy[capability]
	if !ok || actor.UserID == "" {
		return false
	}
	if r.adminOverride && actor.Role == RoleAdmin {
		return true
	}
	if actor.Role != r.role {
		return false
	}
	if r.owned {
		return ownerID != "" && actor.UserID == ownerID
	}
	return true
}

// CanViewBooking: the booking's client, its professional or an admin
func CanViewBooking(actor Actor, b *Booking) bool {
	return Can(actor, CapViewClientBookings, b.ClientID) ||
		Can(actor, CapViewProfessionalAgenda, b.ProfessionalID)
}
