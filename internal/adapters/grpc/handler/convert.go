package handler

import (
	"sort"
	"time"

	dashboardpb "github.com/ogurasousui/learning-dashboard/internal/adapters/grpc/gen/learningdashboard/v1"
	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/dashboard"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toProtoUser(u *user.User) *dashboardpb.User {
	if u == nil {
		return nil
	}

	return &dashboardpb.User{
		Username:   u.Username,
		Role:       string(u.Role),
		FullName:   u.FullName,
		Department: u.Department,
		Email:      u.Email,
		Manager:    u.Manager,
		Employees:  append([]string(nil), u.Employees...),
	}
}

func toProtoSession(s *session.Session) *dashboardpb.Session {
	if s == nil {
		return nil
	}

	portals := user.Portals(s.User.Role)
	names := make([]string, 0, len(portals))
	for _, p := range portals {
		names = append(names, string(p))
	}

	return &dashboardpb.Session{
		Id:        s.ID,
		User:      toProtoUser(&s.User),
		CreatedAt: timestamppb.New(s.CreatedAt),
		Portals:   names,
	}
}

// toProtoTime はゼロ値を未設定として扱います。
func toProtoTime(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toProtoCounts(c employee.StatusCounts) *dashboardpb.StatusCounts {
	return &dashboardpb.StatusCounts{
		Completed:  int32(c.Completed),
		InProgress: int32(c.InProgress),
		NotStarted: int32(c.NotStarted),
		Total:      int32(c.Total()),
	}
}

func toProtoPathItem(it employee.PathItem) *dashboardpb.PathItem {
	return &dashboardpb.PathItem{
		Id:             it.ID,
		Title:          it.Title,
		Type:           string(it.Type),
		EstimatedHours: it.EstimatedHours,
		Status:         string(it.Status),
		Progress:       int32(it.Progress),
		Prerequisite:   it.Prerequisite,
		Skills:         it.Skills,
	}
}

func toProtoPathItems(items []employee.PathItem) []*dashboardpb.PathItem {
	out := make([]*dashboardpb.PathItem, 0, len(items))
	for _, it := range items {
		out = append(out, toProtoPathItem(it))
	}
	return out
}

// toProtoScores はスキル名順に並べて返します。
func toProtoScores(scores map[string]int) []*dashboardpb.AssessmentScore {
	skills := make([]string, 0, len(scores))
	for skill := range scores {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	out := make([]*dashboardpb.AssessmentScore, 0, len(skills))
	for _, skill := range skills {
		out = append(out, &dashboardpb.AssessmentScore{Skill: skill, Score: int32(scores[skill])})
	}
	return out
}

func toProtoProfile(e *employee.Employee) *dashboardpb.Profile {
	if e == nil {
		return nil
	}

	return &dashboardpb.Profile{
		Username:          e.Username,
		FullName:          e.FullName,
		Department:        e.Department,
		Email:             e.Email,
		Skills:            e.Skills,
		CurrentLevel:      e.CurrentLevel,
		TargetLevel:       e.TargetLevel,
		CompletedCourses:  e.CompletedCourses,
		InProgressCourses: e.InProgressCourses,
		AssessmentScores:  toProtoScores(e.AssessmentScores),
		LearningPath:      toProtoPathItems(e.LearningPath),
		LastActive:        toProtoTime(e.LastActive),
	}
}

func toProtoStages(stages []employee.Stage) []*dashboardpb.Stage {
	out := make([]*dashboardpb.Stage, 0, len(stages))
	for _, s := range stages {
		out = append(out, &dashboardpb.Stage{Title: s.Title, Status: string(s.Status)})
	}
	return out
}

func toProtoCourse(c *catalog.Course) *dashboardpb.Course {
	if c == nil {
		return nil
	}

	return &dashboardpb.Course{
		Id:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		Category:       c.Category,
		Level:          string(c.Level),
		EstimatedHours: c.EstimatedHours,
		Skills:         c.Skills,
		Rating:         c.Rating,
		EnrolledCount:  int32(c.EnrolledCount),
		CompletionRate: int32(c.CompletionRate),
	}
}

// toProtoAssessment は正解を含めずに評価テストを変換します。
func toProtoAssessment(a *catalog.Assessment) *dashboardpb.Assessment {
	if a == nil {
		return nil
	}

	questions := make([]*dashboardpb.Question, 0, len(a.Questions))
	for _, q := range a.Questions {
		questions = append(questions, &dashboardpb.Question{
			Id:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Difficulty: string(q.Difficulty),
			Skill:      q.Skill,
		})
	}
	return &dashboardpb.Assessment{
		Id:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Category:     a.Category,
		Difficulty:   string(a.Difficulty),
		Skills:       a.Skills,
		PassingScore: int32(a.PassingScore),
		TimeLimit:    int32(a.TimeLimit),
		Questions:    questions,
	}
}

func toProtoTrend(trend []catalog.MonthlyTrend) []*dashboardpb.MonthlyTrend {
	out := make([]*dashboardpb.MonthlyTrend, 0, len(trend))
	for _, m := range trend {
		out = append(out, &dashboardpb.MonthlyTrend{
			Month:     m.Month,
			Completed: int32(m.Completed),
			Started:   int32(m.Started),
		})
	}
	return out
}

func toProtoMembers(members []dashboard.MemberSummary) []*dashboardpb.MemberSummary {
	out := make([]*dashboardpb.MemberSummary, 0, len(members))
	for _, m := range members {
		out = append(out, &dashboardpb.MemberSummary{
			Username:        m.Username,
			FullName:        m.FullName,
			Department:      m.Department,
			Email:           m.Email,
			Skills:          m.Skills,
			OverallProgress: m.OverallProgress,
			Counts:          toProtoCounts(m.Counts),
			Risk:            string(m.Risk),
			Active:          m.Active,
			CurrentItems:    toProtoPathItems(m.CurrentItems),
		})
	}
	return out
}
