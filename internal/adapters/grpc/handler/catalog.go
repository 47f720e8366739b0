package handler

import (
	"context"

	dashboardpb "github.com/ogurasousui/learning-dashboard/internal/adapters/grpc/gen/learningdashboard/v1"
	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// CatalogGrpcHandler は CatalogService の gRPC 実装です。
type CatalogGrpcHandler struct {
	svc catalog.UseCase
	dashboardpb.UnimplementedCatalogServiceServer
}

// NewCatalogGrpcHandler は CatalogGrpcHandler を生成します。
func NewCatalogGrpcHandler(svc catalog.UseCase) *CatalogGrpcHandler {
	return &CatalogGrpcHandler{svc: svc}
}

// ListCourses はコース一覧を返します。
func (h *CatalogGrpcHandler) ListCourses(ctx context.Context, req *dashboardpb.ListCoursesRequest) (*dashboardpb.ListCoursesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	list, err := h.svc.ListCourses(ctx, catalog.ListCoursesInput{
		Category: req.GetCategory(),
		Level:    req.GetLevel(),
		Skill:    req.GetSkill(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	courses := make([]*dashboardpb.Course, 0, len(list))
	for _, c := range list {
		courses = append(courses, toProtoCourse(c))
	}
	return &dashboardpb.ListCoursesResponse{Courses: courses}, nil
}

// GetCourse はコースを返します。
func (h *CatalogGrpcHandler) GetCourse(ctx context.Context, req *dashboardpb.GetCourseRequest) (*dashboardpb.CourseResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	c, err := h.svc.GetCourse(ctx, catalog.GetCourseInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &dashboardpb.CourseResponse{Course: toProtoCourse(c)}, nil
}

// ListAssessments は評価テスト一覧を返します。
func (h *CatalogGrpcHandler) ListAssessments(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.ListAssessmentsResponse, error) {
	list, err := h.svc.ListAssessments(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*dashboardpb.Assessment, 0, len(list))
	for _, a := range list {
		out = append(out, toProtoAssessment(a))
	}
	return &dashboardpb.ListAssessmentsResponse{Assessments: out}, nil
}

// GetAssessment は評価テストを返します。
func (h *CatalogGrpcHandler) GetAssessment(ctx context.Context, req *dashboardpb.GetAssessmentRequest) (*dashboardpb.AssessmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	a, err := h.svc.GetAssessment(ctx, catalog.GetAssessmentInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &dashboardpb.AssessmentResponse{Assessment: toProtoAssessment(a)}, nil
}

// SubmitAssessment は回答を採点します。結果は保存しません。
func (h *CatalogGrpcHandler) SubmitAssessment(ctx context.Context, req *dashboardpb.SubmitAssessmentRequest) (*dashboardpb.AssessmentResultResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	answers := make([]int, 0, len(req.GetAnswers()))
	for _, a := range req.GetAnswers() {
		answers = append(answers, int(a))
	}

	res, err := h.svc.SubmitAssessment(ctx, catalog.SubmitAssessmentInput{
		AssessmentID: req.GetAssessmentId(),
		Answers:      answers,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	scores := make([]*dashboardpb.SkillScore, 0, len(res.SkillScores))
	for _, s := range res.SkillScores {
		scores = append(scores, &dashboardpb.SkillScore{
			Skill:   s.Skill,
			Correct: int32(s.Correct),
			Total:   int32(s.Total),
			Score:   int32(s.Score),
		})
	}

	return &dashboardpb.AssessmentResultResponse{
		AssessmentId: res.AssessmentID,
		Correct:      int32(res.Correct),
		Total:        int32(res.Total),
		Score:        int32(res.Score),
		Passed:       res.Passed,
		SkillScores:  scores,
	}, nil
}

// MonthlyTrend は月次推移を返します。
func (h *CatalogGrpcHandler) MonthlyTrend(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.MonthlyTrendResponse, error) {
	trend, err := h.svc.MonthlyTrend(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &dashboardpb.MonthlyTrendResponse{Trend: toProtoTrend(trend)}, nil
}
