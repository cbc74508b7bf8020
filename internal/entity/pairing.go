package entity

import "time"

// PairRequest is a directed request by a participant to be placed with a partner.
// It only binds when the partner requested them back.
type PairRequest struct {
	ParticipantId int       `db:"participant_id"`
	PartnerId     int       `db:"partner_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// ReciprocalPair is two participants who requested each other.
// First is always the lower id.
type ReciprocalPair struct {
	First  int
	Second int
}

// NewReciprocalPair normalizes the member order.
func NewReciprocalPair(a, b int) ReciprocalPair {
	if b < a {
		a, b = b, a
	}
	return ReciprocalPair{First: a, Second: b}
}

// Partner returns the other member of the pair.
func (p ReciprocalPair) Partner(of int) int {
	if of == p.First {
		return p.Second
	}
	return p.First
}
