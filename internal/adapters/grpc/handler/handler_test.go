package handler

import (
	"context"
	"net"
	"testing"
	"time"

	dashboardpb "github.com/ogurasousui/learning-dashboard/internal/adapters/grpc/gen/learningdashboard/v1"
	"github.com/ogurasousui/learning-dashboard/internal/adapters/repository/memory"
	"github.com/ogurasousui/learning-dashboard/internal/adapters/sessionstore"
	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/dashboard"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	"github.com/ogurasousui/learning-dashboard/internal/platform/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type testClients struct {
	conn      *grpc.ClientConn
	auth      dashboardpb.AuthServiceClient
	dashboard dashboardpb.DashboardServiceClient
	catalog   dashboardpb.CatalogServiceClient
	directory dashboardpb.DirectoryServiceClient
	dataset   *seed.Dataset
	now       time.Time
}

func startServer(t *testing.T) *testClients {
	t.Helper()

	ds, err := seed.Default()
	require.NoError(t, err)
	repos, err := memory.FromDataset(ds, bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	users := user.NewService(repos.Users)
	sessions := session.NewManager(users, sessionstore.NewMemoryStore(), stubClock{now: now})
	employees := employee.NewService(repos.Employees, nil)
	cat := catalog.NewService(repos.Catalog, nil)
	dash := dashboard.NewService(sessions, users, employees, cat, stubClock{now: now})

	srv := grpc.NewServer()
	dashboardpb.RegisterAuthServiceServer(srv, NewAuthGrpcHandler(sessions))
	dashboardpb.RegisterDashboardServiceServer(srv, NewDashboardGrpcHandler(dash))
	dashboardpb.RegisterCatalogServiceServer(srv, NewCatalogGrpcHandler(cat))
	dashboardpb.RegisterDirectoryServiceServer(srv, NewDirectoryGrpcHandler(sessions, users, employees))

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testClients{
		conn:      conn,
		auth:      dashboardpb.NewAuthServiceClient(conn),
		dashboard: dashboardpb.NewDashboardServiceClient(conn),
		catalog:   dashboardpb.NewCatalogServiceClient(conn),
		directory: dashboardpb.NewDirectoryServiceClient(conn),
		dataset:   ds,
		now:       now,
	}
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err), "unexpected status: %v", err)
}

func login(t *testing.T, c *testClients, username, password string) *dashboardpb.Session {
	t.Helper()
	resp, err := c.auth.Login(context.Background(), &dashboardpb.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	require.NotNil(t, resp.GetSession())
	return resp.GetSession()
}

func TestAuthService_LoginLogout(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	_, err := c.auth.CurrentSession(ctx, &emptypb.Empty{})
	requireCode(t, err, codes.Unauthenticated)

	_, err = c.auth.Login(ctx, &dashboardpb.LoginRequest{Username: "emp1", Password: "wrong"})
	requireCode(t, err, codes.Unauthenticated)
	assert.Equal(t, "invalid username or password", status.Convert(err).Message())

	sess := login(t, c, "emp1", "emp123")
	assert.NotEmpty(t, sess.GetId())
	assert.Equal(t, "emp1", sess.GetUser().GetUsername())
	assert.Equal(t, "employee", sess.GetUser().GetRole())
	assert.Equal(t, "manager1", sess.GetUser().GetManager())
	assert.Equal(t, []string{"learner"}, sess.GetPortals())
	assert.True(t, sess.GetCreatedAt().AsTime().Equal(c.now))

	// 失敗したログインは既存セッションを変えない。
	_, err = c.auth.Login(ctx, &dashboardpb.LoginRequest{Username: "admin1", Password: "emp123"})
	requireCode(t, err, codes.Unauthenticated)

	current, err := c.auth.CurrentSession(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, sess.GetId(), current.GetSession().GetId())

	_, err = c.auth.Logout(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	_, err = c.auth.Logout(ctx, &emptypb.Empty{})
	require.NoError(t, err)

	_, err = c.auth.CurrentSession(ctx, &emptypb.Empty{})
	requireCode(t, err, codes.Unauthenticated)
}

// 既定の proto コーデックだけを使うクライアントからも呼び出せること。
func TestAuthService_DefaultProtoCodec(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	out := new(dashboardpb.SessionResponse)
	err := c.conn.Invoke(ctx, dashboardpb.AuthService_Login_FullMethodName,
		&dashboardpb.LoginRequest{Username: "admin1", Password: "admin123"}, out,
		grpc.CallContentSubtype("proto"),
	)
	require.NoError(t, err)
	assert.Equal(t, "admin1", out.GetSession().GetUser().GetUsername())
	assert.Equal(t, []string{"admin"}, out.GetSession().GetPortals())

	raw, err := proto.Marshal(out)
	require.NoError(t, err)
	decoded := new(dashboardpb.SessionResponse)
	require.NoError(t, proto.Unmarshal(raw, decoded))
	assert.True(t, proto.Equal(out, decoded))
	assert.True(t, decoded.GetSession().GetCreatedAt().AsTime().Equal(c.now))
}

func TestDashboardService_LearnerViews(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	_, err := c.dashboard.LearnerOverview(ctx, &emptypb.Empty{})
	requireCode(t, err, codes.Unauthenticated)

	login(t, c, "emp1", "emp123")
	emp1 := c.dataset.Employees[0]
	require.Equal(t, "emp1", emp1.Username)

	overview, err := c.dashboard.LearnerOverview(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "emp1", overview.GetProfile().GetUsername())
	assert.True(t, overview.GetProfile().GetLastActive().AsTime().Equal(emp1.LastActive))
	assert.Len(t, overview.GetProfile().GetAssessmentScores(), len(emp1.AssessmentScores))
	assert.InDelta(t, emp1.OverallProgress(), overview.GetOverallProgress(), 1e-9)
	assert.Len(t, overview.GetStages(), 5)
	assert.LessOrEqual(t, len(overview.GetUpNext()), 4)
	assert.Equal(t, int32(len(emp1.LearningPath)), overview.GetCounts().GetTotal())

	path, err := c.dashboard.LearningPath(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, path.GetItems(), len(emp1.LearningPath))
	for _, it := range path.GetItems() {
		if it.GetPrerequisite() != "" {
			assert.NotEmpty(t, it.GetPrerequisiteTitle(), "prerequisite of %s not resolved", it.GetId())
		}
	}

	tracker, err := c.dashboard.Tracker(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.InDelta(t, emp1.RemainingHours(), tracker.GetRemainingHours(), 1e-9)
	assert.Equal(t, string(emp1.RiskLevel()), tracker.GetRisk())

	recs, err := c.dashboard.Recommendations(ctx, &dashboardpb.RecommendationsRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, recs.GetItems())
	assert.LessOrEqual(t, len(recs.GetItems()), 4)
	completed := make(map[string]bool)
	for _, id := range emp1.CompletedCourses {
		completed[id] = true
	}
	for i, r := range recs.GetItems() {
		assert.False(t, completed[r.GetCourse().GetId()], "completed course %s recommended", r.GetCourse().GetId())
		if i > 0 {
			assert.GreaterOrEqual(t, recs.GetItems()[i-1].GetRelevance(), r.GetRelevance())
		}
	}

	_, err = c.dashboard.Recommendations(ctx, &dashboardpb.RecommendationsRequest{Limit: -1})
	requireCode(t, err, codes.InvalidArgument)

	team, err := c.dashboard.TeamMembers(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.NotNil(t, team.GetManager())
	assert.Equal(t, "manager1", team.GetManager().GetUsername())
	for _, m := range team.GetMembers() {
		assert.NotEqual(t, "emp1", m.GetUsername())
	}

	_, err = c.dashboard.ManagerOverview(ctx, &emptypb.Empty{})
	requireCode(t, err, codes.PermissionDenied)
	_, err = c.dashboard.AdminOverview(ctx, &emptypb.Empty{})
	requireCode(t, err, codes.PermissionDenied)
}

func TestDashboardService_ManagerAndAdmin(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	login(t, c, "manager1", "manager123")

	overview, err := c.dashboard.ManagerOverview(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), overview.GetTeamSize())
	require.Len(t, overview.GetDistribution(), 4)
	var total int32
	for _, b := range overview.GetDistribution() {
		total += b.GetCount()
	}
	assert.Equal(t, int32(3), total)

	// manager1 自身の学習プロファイルは存在しない。
	_, err = c.dashboard.LearnerOverview(ctx, &emptypb.Empty{})
	requireCode(t, err, codes.FailedPrecondition)

	login(t, c, "admin1", "admin123")

	admin, err := c.dashboard.AdminOverview(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int32(len(c.dataset.Employees)), admin.GetTotalEmployees())
	assert.Equal(t, int32(2), admin.GetTotalManagers())
	var active int32
	for _, e := range c.dataset.Employees {
		if e.IsActive(c.now, employee.ActiveWindow) {
			active++
		}
	}
	assert.Equal(t, active, admin.GetActiveUsers())
	assert.Len(t, admin.GetTrend(), len(c.dataset.Trend))

	mgmt, err := c.dashboard.UserManagement(ctx, &dashboardpb.UserManagementRequest{Department: "Data Analytics"})
	require.NoError(t, err)
	require.Len(t, mgmt.GetMembers(), 2)
	for _, m := range mgmt.GetMembers() {
		assert.Equal(t, "Data Analytics", m.GetDepartment())
	}

	hierarchy, err := c.dashboard.TeamHierarchy(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, hierarchy.GetTeams(), 2)
	assert.Equal(t, "manager1", hierarchy.GetTeams()[0].GetManager().GetUsername())
	assert.Len(t, hierarchy.GetTeams()[0].GetReports(), 3)
}

func TestCatalogService(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	courses, err := c.catalog.ListCourses(ctx, &dashboardpb.ListCoursesRequest{Level: "Advanced"})
	require.NoError(t, err)
	require.NotEmpty(t, courses.GetCourses())
	for _, course := range courses.GetCourses() {
		assert.Equal(t, "advanced", course.GetLevel())
	}

	_, err = c.catalog.ListCourses(ctx, &dashboardpb.ListCoursesRequest{Level: "expert"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = c.catalog.GetCourse(ctx, &dashboardpb.GetCourseRequest{Id: "missing"})
	requireCode(t, err, codes.NotFound)

	got, err := c.catalog.GetAssessment(ctx, &dashboardpb.GetAssessmentRequest{Id: "js-assessment"})
	require.NoError(t, err)
	require.Len(t, got.GetAssessment().GetQuestions(), 2)

	result, err := c.catalog.SubmitAssessment(ctx, &dashboardpb.SubmitAssessmentRequest{AssessmentId: "js-assessment", Answers: []int32{3, 1}})
	require.NoError(t, err)
	assert.Equal(t, int32(1), result.GetCorrect())
	assert.Equal(t, int32(50), result.GetScore())
	assert.False(t, result.GetPassed())
	require.Len(t, result.GetSkillScores(), 1)
	want := &dashboardpb.SkillScore{Skill: "JavaScript", Correct: 1, Total: 2, Score: 50}
	assert.True(t, proto.Equal(want, result.GetSkillScores()[0]), "got %v", result.GetSkillScores()[0])

	result, err = c.catalog.SubmitAssessment(ctx, &dashboardpb.SubmitAssessmentRequest{AssessmentId: "js-assessment", Answers: []int32{3, 3}})
	require.NoError(t, err)
	assert.Equal(t, int32(100), result.GetScore())
	assert.True(t, result.GetPassed())

	_, err = c.catalog.SubmitAssessment(ctx, &dashboardpb.SubmitAssessmentRequest{AssessmentId: "js-assessment", Answers: []int32{3}})
	requireCode(t, err, codes.InvalidArgument)
	_, err = c.catalog.SubmitAssessment(ctx, &dashboardpb.SubmitAssessmentRequest{AssessmentId: "js-assessment", Answers: []int32{3, 9}})
	requireCode(t, err, codes.InvalidArgument)

	trend, err := c.catalog.MonthlyTrend(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Len(t, trend.GetTrend(), len(c.dataset.Trend))
}

func TestDirectoryService(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	_, err := c.directory.Departments(ctx, &emptypb.Empty{})
	requireCode(t, err, codes.Unauthenticated)

	login(t, c, "admin1", "admin123")

	departments, err := c.directory.Departments(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Software Development", "Data Analytics"}, departments.GetDepartments())

	managers, err := c.directory.ListUsers(ctx, &dashboardpb.ListUsersRequest{Role: "manager"})
	require.NoError(t, err)
	require.Len(t, managers.GetUsers(), 2)

	_, err = c.directory.ListUsers(ctx, &dashboardpb.ListUsersRequest{Role: "owner"})
	requireCode(t, err, codes.InvalidArgument)

	u, err := c.directory.GetUser(ctx, &dashboardpb.GetUserRequest{Username: "emp4"})
	require.NoError(t, err)
	assert.Equal(t, "Data Analytics", u.GetUser().GetDepartment())

	_, err = c.directory.GetUser(ctx, &dashboardpb.GetUserRequest{Username: "nobody"})
	requireCode(t, err, codes.NotFound)

	page, err := c.directory.ListEmployees(ctx, &dashboardpb.ListEmployeesRequest{Department: "all", PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.GetEmployees(), 2)
	assert.Equal(t, "2", page.GetNextPageToken())

	rest, err := c.directory.ListEmployees(ctx, &dashboardpb.ListEmployeesRequest{PageSize: 2, PageToken: page.GetNextPageToken()})
	require.NoError(t, err)
	assert.Len(t, rest.GetEmployees(), 2)

	_, err = c.directory.ListEmployees(ctx, &dashboardpb.ListEmployeesRequest{PageToken: "abc"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestHandlers_NilRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auth := NewAuthGrpcHandler(nil)
	_, err := auth.Login(ctx, nil)
	requireCode(t, err, codes.InvalidArgument)

	cat := NewCatalogGrpcHandler(nil)
	_, err = cat.SubmitAssessment(ctx, nil)
	requireCode(t, err, codes.InvalidArgument)

	dir := NewDirectoryGrpcHandler(nil, nil, nil)
	_, err = dir.GetUser(ctx, nil)
	requireCode(t, err, codes.InvalidArgument)
}
