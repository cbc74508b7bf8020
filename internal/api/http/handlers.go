package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/outingclub/trip-lottery/internal/dto"
	"github.com/outingclub/trip-lottery/internal/form"
	"github.com/outingclub/trip-lottery/internal/middleware"
)

func (s *Server) getRoster(w http.ResponseWriter, r *http.Request) {
	tripId, err := pathId(r, "tripId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	roster, err := s.svc.Roster(r.Context(), tripId)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertSignups(roster))
}

func (s *Server) getWaitlist(w http.ResponseWriter, r *http.Request) {
	tripId, err := pathId(r, "tripId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	wl, err := s.svc.Waitlist(r.Context(), tripId)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertWaitlist(wl))
}

func (s *Server) getLotteryLog(w http.ResponseWriter, r *http.Request) {
	run, err := s.svc.LotteryLog(r.Context(), chi.URLParam(r, "cycleId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertLotteryRun(run))
}

func (s *Server) addParticipant(w http.ResponseWriter, r *http.Request) {
	req := &form.AddParticipantRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := s.svc.AddParticipant(r.Context(), req.ParticipantInsert())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) updateCarStatus(w http.ResponseWriter, r *http.Request) {
	pid, err := pathId(r, "participantId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req := &form.CarStatusRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ParticipantId = pid
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.UpdateCarStatus(r.Context(), pid, req.CarStatusValue(), req.NumberOfPassengers); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) requestPartner(w http.ResponseWriter, r *http.Request) {
	pid, err := pathId(r, "participantId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req := &form.PartnerRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ParticipantId = pid
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.RequestPartner(r.Context(), pid, req.PartnerId); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) reorderSignups(w http.ResponseWriter, r *http.Request) {
	pid, err := pathId(r, "participantId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.limiter.CheckReorder(pid); err != nil {
		writeError(w, r, err)
		return
	}
	req := &form.ReorderSignupsRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ParticipantId = pid
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	ss, err := s.svc.ReorderSignups(r.Context(), pid, req.SignupIds)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertSignups(ss))
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	tripId, err := pathId(r, "tripId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req := &form.SignupRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	req.TripId = tripId
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.limiter.CheckSignup(middleware.GetClientIP(r.Context()), req.ParticipantId); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := s.svc.Signup(r.Context(), req.ParticipantId, tripId)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ConvertSignupResult(res))
}

func (s *Server) dropSignup(w http.ResponseWriter, r *http.Request) {
	signupId, err := pathId(r, "signupId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	promoted, err := s.svc.DropSignup(r.Context(), signupId)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DropResult{Promoted: dto.ConvertSignup(promoted)})
}

func (s *Server) addTrip(w http.ResponseWriter, r *http.Request) {
	req := &form.AddTripRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := s.svc.AddTrip(r.Context(), req.TripInsert())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) setTripCapacity(w http.ResponseWriter, r *http.Request) {
	tripId, err := pathId(r, "tripId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req := &form.TripCapacityRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	req.TripId = tripId
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	promoted, err := s.svc.SetTripCapacity(r.Context(), tripId, req.MaxParticipants)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]dto.Signup{"promoted": dto.ConvertSignups(promoted)})
}

func (s *Server) addLeaderSignup(w http.ResponseWriter, r *http.Request) {
	tripId, err := pathId(r, "tripId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req := &form.LeaderSignupRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	req.TripId = tripId
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := s.svc.AddLeaderSignup(r.Context(), tripId, req.ParticipantId, req.ForceAbsoluteTop)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertLeaderAddResult(res))
}

func (s *Server) prioritizeWaitlist(w http.ResponseWriter, r *http.Request) {
	signupId, err := pathId(r, "signupId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req := &form.PrioritizeWaitlistRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	req.SignupId = signupId
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	tier, err := req.WaitlistTier()
	if err != nil {
		writeError(w, r, err)
		return
	}
	e, err := s.svc.PrioritizeWaitlist(r.Context(), signupId, tier)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertWaitlistEntry(e))
}

func (s *Server) addLotteryCycle(w http.ResponseWriter, r *http.Request) {
	req := &form.AddLotteryCycleRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.AddLotteryCycle(r.Context(), req.LotteryCycleInsert()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": req.Id})
}

func (s *Server) runLottery(w http.ResponseWriter, r *http.Request) {
	run, err := s.svc.RunLottery(r.Context(), chi.URLParam(r, "cycleId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertLotteryRun(run))
}
