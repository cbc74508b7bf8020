package gerr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	LotteryAlreadyRun = status.Error(codes.AlreadyExists, "lottery already run for this cycle")
	SignupExists      = status.Error(codes.AlreadyExists, "participant already signed up for this trip")

	CycleNotFound       = status.Error(codes.NotFound, "lottery cycle not found")
	TripNotFound        = status.Error(codes.NotFound, "trip not found")
	SignupNotFound      = status.Error(codes.NotFound, "signup not found")
	ParticipantNotFound = status.Error(codes.NotFound, "participant not found")
	WaitlistNotFound    = status.Error(codes.NotFound, "signup is not on the waitlist")
	LotteryNotRun       = status.Error(codes.NotFound, "lottery has not run for this cycle")

	TripNotOpen         = status.Error(codes.FailedPrecondition, "trip is not accepting signups")
	TripNotLottery      = status.Error(codes.FailedPrecondition, "trip is not a lottery trip")
	CapacityBelowRoster = status.Error(codes.FailedPrecondition, "capacity is below the current roster")
	SignupWithdrawn     = status.Error(codes.FailedPrecondition, "signup was already withdrawn")

	InvalidRankOrder = status.Error(codes.InvalidArgument, "ranking must list every active signup exactly once")
	InvalidCapacity  = status.Error(codes.InvalidArgument, "maximum participants must be positive")
	SelfPairRequest  = status.Error(codes.InvalidArgument, "participant can't pair with themselves")

	TooManySignups = status.Error(codes.ResourceExhausted, "too many signup requests, please slow down")
)
