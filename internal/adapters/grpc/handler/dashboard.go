package handler

import (
	"context"

	dashboardpb "github.com/ogurasousui/learning-dashboard/internal/adapters/grpc/gen/learningdashboard/v1"
	"github.com/ogurasousui/learning-dashboard/internal/core/dashboard"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// DashboardGrpcHandler は DashboardService の gRPC 実装です。
type DashboardGrpcHandler struct {
	svc dashboard.UseCase
	dashboardpb.UnimplementedDashboardServiceServer
}

// NewDashboardGrpcHandler は DashboardGrpcHandler を生成します。
func NewDashboardGrpcHandler(svc dashboard.UseCase) *DashboardGrpcHandler {
	return &DashboardGrpcHandler{svc: svc}
}

// LearnerOverview は学習者の概要を返します。
func (h *DashboardGrpcHandler) LearnerOverview(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.LearnerOverviewResponse, error) {
	v, err := h.svc.LearnerOverview(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &dashboardpb.LearnerOverviewResponse{
		Profile:         toProtoProfile(v.Profile),
		Stages:          toProtoStages(v.Stages),
		OverallProgress: v.OverallProgress,
		Counts:          toProtoCounts(v.Counts),
		SkillGaps:       v.SkillGaps,
		UpNext:          toProtoPathItems(v.UpNext),
	}, nil
}

// LearningPath は前提条件を解決済みの学習パスを返します。
func (h *DashboardGrpcHandler) LearningPath(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.LearningPathResponse, error) {
	v, err := h.svc.LearningPath(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	items := make([]*dashboardpb.PathItem, 0, len(v.Items))
	for _, entry := range v.Items {
		it := toProtoPathItem(entry.Item)
		it.PrerequisiteTitle = entry.PrerequisiteTitle
		items = append(items, it)
	}

	return &dashboardpb.LearningPathResponse{
		Username: v.Username,
		Items:    items,
		Counts:   toProtoCounts(v.Counts),
	}, nil
}

// Tracker は進捗トラッカーを返します。
func (h *DashboardGrpcHandler) Tracker(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.TrackerResponse, error) {
	v, err := h.svc.Tracker(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &dashboardpb.TrackerResponse{
		Username:        v.Username,
		OverallProgress: v.OverallProgress,
		Risk:            string(v.Risk),
		RemainingHours:  v.RemainingHours,
		Counts:          toProtoCounts(v.Counts),
		InProgress:      toProtoPathItems(v.InProgress),
	}, nil
}

// Recommendations はおすすめコースを返します。
func (h *DashboardGrpcHandler) Recommendations(ctx context.Context, req *dashboardpb.RecommendationsRequest) (*dashboardpb.RecommendationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.GetLimit() < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}

	v, err := h.svc.Recommendations(ctx, dashboard.RecommendationsInput{Limit: int(req.GetLimit())})
	if err != nil {
		return nil, toStatusError(err)
	}

	items := make([]*dashboardpb.Recommendation, 0, len(v.Items))
	for _, r := range v.Items {
		items = append(items, &dashboardpb.Recommendation{
			Course:      toProtoCourse(r.Course),
			Relevance:   r.Relevance,
			GapSkills:   r.GapSkills,
			KnownSkills: r.KnownSkills,
		})
	}

	return &dashboardpb.RecommendationsResponse{
		SkillGaps:     v.SkillGaps,
		Items:         items,
		TopThreeHours: v.TopThreeHours,
	}, nil
}

// TeamMembers はチームメンバーを返します。
func (h *DashboardGrpcHandler) TeamMembers(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.TeamMembersResponse, error) {
	v, err := h.svc.TeamMembers(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &dashboardpb.TeamMembersResponse{
		Manager: toProtoUser(v.Manager),
		Members: toProtoMembers(v.Members),
	}, nil
}

// ManagerOverview はマネージャーダッシュボードを返します。
func (h *DashboardGrpcHandler) ManagerOverview(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.ManagerOverviewResponse, error) {
	v, err := h.svc.ManagerOverview(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	buckets := make([]*dashboardpb.ProgressBucket, 0, len(v.Distribution))
	for _, b := range v.Distribution {
		buckets = append(buckets, &dashboardpb.ProgressBucket{Label: b.Label, Min: b.Min, Max: b.Max, Count: int32(b.Count)})
	}

	return &dashboardpb.ManagerOverviewResponse{
		TeamSize:        int32(v.TeamSize),
		AverageProgress: v.AverageProgress,
		CompletedItems:  int32(v.CompletedItems),
		AtRisk:          int32(v.AtRisk),
		Members:         toProtoMembers(v.Members),
		Distribution:    buckets,
	}, nil
}

// AdminOverview は管理者ダッシュボードを返します。
func (h *DashboardGrpcHandler) AdminOverview(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.AdminOverviewResponse, error) {
	v, err := h.svc.AdminOverview(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	departments := make([]*dashboardpb.DepartmentProgress, 0, len(v.Departments))
	for _, d := range v.Departments {
		departments = append(departments, &dashboardpb.DepartmentProgress{Department: d.Department, Counts: toProtoCounts(d.Counts)})
	}
	skills := make([]*dashboardpb.SkillAverage, 0, len(v.Skills))
	for _, s := range v.Skills {
		skills = append(skills, &dashboardpb.SkillAverage{Skill: s.Skill, Average: s.Average, Samples: int32(s.Samples)})
	}

	return &dashboardpb.AdminOverviewResponse{
		TotalEmployees: int32(v.TotalEmployees),
		TotalManagers:  int32(v.TotalManagers),
		ActiveUsers:    int32(v.ActiveUsers),
		CompletionRate: v.CompletionRate,
		Departments:    departments,
		Skills:         skills,
		Trend:          toProtoTrend(v.Trend),
	}, nil
}

// UserManagement は部署・検索語で絞り込んだ社員一覧を返します。
func (h *DashboardGrpcHandler) UserManagement(ctx context.Context, req *dashboardpb.UserManagementRequest) (*dashboardpb.UserManagementResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	v, err := h.svc.UserManagement(ctx, dashboard.UserManagementInput{
		Department: req.GetDepartment(),
		Search:     req.GetSearch(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &dashboardpb.UserManagementResponse{
		Departments: v.Departments,
		Members:     toProtoMembers(v.Members),
	}, nil
}

// TeamHierarchy はマネージャーごとの直属の部下を返します。
func (h *DashboardGrpcHandler) TeamHierarchy(ctx context.Context, _ *emptypb.Empty) (*dashboardpb.TeamHierarchyResponse, error) {
	nodes, err := h.svc.TeamHierarchy(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	teams := make([]*dashboardpb.TeamNode, 0, len(nodes))
	for _, n := range nodes {
		teams = append(teams, &dashboardpb.TeamNode{Manager: toProtoUser(&n.Manager), Reports: toProtoMembers(n.Reports)})
	}
	return &dashboardpb.TeamHierarchyResponse{Teams: teams}, nil
}
