package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/venn-social/vennd/pkg/models"
	interviewv1 "github.com/venn-social/vennd/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCRuntime implements AgentRuntime and Judge by calling the external
// interview runtime service via gRPC.
type GRPCRuntime struct {
	conn   *grpc.ClientConn
	client interviewv1.InterviewServiceClient
}

// NewGRPCRuntime creates a new gRPC interview runtime client.
func NewGRPCRuntime(addr string) (*GRPCRuntime, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to interview runtime at %s: %w", addr, err)
	}
	return &GRPCRuntime{
		conn:   conn,
		client: interviewv1.NewInterviewServiceClient(conn),
	}, nil
}

// RunOwnerTurn asks the owner agent for its next question.
func (c *GRPCRuntime) RunOwnerTurn(ctx context.Context, in TurnInput) (TurnOutput, error) {
	req, err := toProtoTurnRequest(in)
	if err != nil {
		return TurnOutput{}, err
	}
	resp, err := c.client.RunOwnerTurn(ctx, req)
	if err != nil {
		return TurnOutput{}, fmt.Errorf("gRPC RunOwnerTurn call failed: %w", err)
	}
	return fromProtoTurnResponse(resp), nil
}

// RunVisitorTurn asks the visitor agent for its answer.
func (c *GRPCRuntime) RunVisitorTurn(ctx context.Context, in TurnInput) (TurnOutput, error) {
	req, err := toProtoTurnRequest(in)
	if err != nil {
		return TurnOutput{}, err
	}
	resp, err := c.client.RunVisitorTurn(ctx, req)
	if err != nil {
		return TurnOutput{}, fmt.Errorf("gRPC RunVisitorTurn call failed: %w", err)
	}
	return fromProtoTurnResponse(resp), nil
}

// Evaluate asks the judge for its verdict on a finished conversation.
func (c *GRPCRuntime) Evaluate(ctx context.Context, in JudgeInput) (JudgeVerdict, error) {
	resp, err := c.client.Evaluate(ctx, &interviewv1.JudgeRequest{
		OwnerObjective: in.OwnerObjective,
		Transcript:     toProtoTranscript(in.Transcript),
	})
	if err != nil {
		return JudgeVerdict{}, fmt.Errorf("gRPC Evaluate call failed: %w", err)
	}

	verdict := JudgeVerdict{
		ShouldNotify:     resp.ShouldNotify,
		SoftMatch:        resp.SoftMatch,
		NotificationText: resp.NotificationText,
		SummaryText:      resp.SummaryText,
	}
	if resp.Confidence != nil {
		confidence := *resp.Confidence
		verdict.Confidence = &confidence
	}
	return verdict, nil
}

// Close releases the gRPC connection.
func (c *GRPCRuntime) Close() error {
	return c.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoTurnRequest(in TurnInput) (*interviewv1.TurnRequest, error) {
	ownerProfile, err := encodeJSON(in.Mission.OwnerProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode owner profile: %w", err)
	}
	visitorProfile, err := encodeJSON(in.Mission.VisitorProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode visitor profile: %w", err)
	}
	missionContext, err := encodeJSON(in.Mission.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mission context: %w", err)
	}

	return &interviewv1.TurnRequest{
		MissionId:          in.Mission.MissionID,
		OwnerUserId:        in.Mission.OwnerUserID,
		VisitorUserId:      in.Mission.VisitorUserID,
		OwnerObjective:     in.Mission.OwnerCircle.Objective,
		OwnerProfileJson:   ownerProfile,
		VisitorProfileJson: visitorProfile,
		ContextJson:        missionContext,
		Turn:               int32(in.Turn),
		Transcript:         toProtoTranscript(in.Transcript),
	}, nil
}

func toProtoTranscript(turns []models.TranscriptTurn) []*interviewv1.TranscriptTurn {
	if len(turns) == 0 {
		return nil
	}
	out := make([]*interviewv1.TranscriptTurn, len(turns))
	for i, turn := range turns {
		out[i] = &interviewv1.TranscriptTurn{
			Speaker:   turn.Speaker,
			Content:   turn.Content,
			Timestamp: turn.Timestamp.Format(time.RFC3339Nano),
		}
	}
	return out
}

func fromProtoTurnResponse(resp *interviewv1.TurnResponse) TurnOutput {
	return TurnOutput{
		AsUserMessage: resp.AsUserMessage,
		StopSuggested: resp.StopSuggested,
	}
}

func encodeJSON(m map[string]any) (string, error) {
	if len(m) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
