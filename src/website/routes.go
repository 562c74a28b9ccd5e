package website

import (
	"net/http"
	"regexp"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	RegexProjects        = regexp.MustCompile(`^/api/projects$`)
	RegexProject         = regexp.MustCompile(`^/api/projects/(?P<id>\d+)$`)
	RegexEpisodes        = regexp.MustCompile(`^/api/episodes$`)
	RegexEpisode         = regexp.MustCompile(`^/api/episodes/(?P<id>\d+)$`)
	RegexScripts         = regexp.MustCompile(`^/api/scripts$`)
	RegexScript          = regexp.MustCompile(`^/api/scripts/(?P<id>\d+)$`)
	RegexScriptPreview   = regexp.MustCompile(`^/api/scripts/(?P<id>\d+)/preview$`)
	RegexUsers           = regexp.MustCompile(`^/api/users$`)
	RegexUser            = regexp.MustCompile(`^/api/users/(?P<id>\d+)$`)
	RegexDashContributor = regexp.MustCompile(`^/api/dashboard/contributor$`)
	RegexDashEditor      = regexp.MustCompile(`^/api/dashboard/editor$`)
	RegexDashAdmin       = regexp.MustCompile(`^/api/dashboard/admin$`)
	RegexAssetUpload     = regexp.MustCompile(`^/api/assets$`)
	RegexCatchAll        = regexp.MustCompile(`^`)
)

func NewWebsiteRoutes(conn *pgxpool.Pool) http.Handler {
	router := &Router{}
	routes := RouteBuilder{
		Router: router,
		Middlewares: []Middleware{
			panicCatcherMiddleware,
			trackRequestMiddleware,
			logContextErrorsMiddleware,
			storeDBConnMiddleware(conn),
			identifyUser,
		},
	}

	routes.GET(RegexProjects, ListProjects)
	routes.POST(RegexProjects, CreateProject)
	routes.GET(RegexProject, GetProject)
	routes.PUT(RegexProject, UpdateProject)
	routes.DELETE(RegexProject, DeleteProject)

	routes.GET(RegexEpisodes, ListEpisodes)
	routes.POST(RegexEpisodes, CreateEpisode)
	routes.GET(RegexEpisode, GetEpisode)
	routes.PUT(RegexEpisode, UpdateEpisode)
	routes.DELETE(RegexEpisode, DeleteEpisode)

	routes.GET(RegexScripts, ListScripts)
	routes.POST(RegexScripts, CreateScript)
	routes.GET(RegexScript, GetScript)
	routes.PUT(RegexScript, UpdateScript)
	routes.DELETE(RegexScript, DeleteScript)
	routes.GET(RegexScriptPreview, ScriptPreview)

	routes.GET(RegexUsers, ListUsers)
	routes.POST(RegexUsers, CreateUser)
	routes.GET(RegexUser, GetUser)
	routes.PUT(RegexUser, UpdateUser)
	routes.DELETE(RegexUser, DeleteUser)

	// The contributor dashboard is scoped to the acting user, so it is the
	// only one that demands an identity. Roles are advisory throughout.
	contributorRoutes := routes.WithMiddleware(requireUser)
	contributorRoutes.GET(RegexDashContributor, ContributorDashboard)
	routes.GET(RegexDashEditor, EditorDashboard)
	routes.GET(RegexDashAdmin, AdminDashboard)

	routes.POST(RegexAssetUpload, AssetUpload)

	routes.AnyMethod(RegexCatchAll, FourOhFour)

	return router
}
