package migration

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"git.radiohub.fm/hub/hub/src/config"
	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/utils"
	lorem "github.com/HandmadeNetwork/golorem"
	"github.com/jackc/pgx/v5/tracelog"
)

// Creates only what's necessary to get the hub running. Not very useful for
// local dev on its own; sample data makes things a lot better.
func BareMinimumSeed() *models.User {
	Migrate(LatestVersion())

	ctx := context.Background()
	conn := db.NewConnWithConfig(config.PostgresConfig{
		LogLevel: tracelog.LogLevelWarn,
	})
	defer conn.Close(ctx)

	fmt.Println("Creating admin user...")
	admin := seedUser(ctx, conn, models.User{
		Name:   "Admin",
		Email:  "admin@radiohub.fm",
		Role:   models.UserRoleAdmin,
		Status: models.UserStatusVerified,
	})

	return admin
}

// Seeds the database with sample data for local dev.
func SampleSeed() {
	admin := BareMinimumSeed()

	ctx := context.Background()
	conn := db.NewConnWithConfig(config.PostgresConfig{
		LogLevel: tracelog.LogLevelWarn,
	})
	defer conn.Close(ctx)

	fmt.Println("Creating users...")
	edna := seedUser(ctx, conn, models.User{Name: "Edna", Role: models.UserRoleEditor})
	alice := seedUser(ctx, conn, models.User{Name: "Alice"})
	bob := seedUser(ctx, conn, models.User{Name: "Bob"})
	charlie := seedUser(ctx, conn, models.User{Name: "Charlie"})
	seedUser(ctx, conn, models.User{Name: "Dawn", Status: models.UserStatusPending})
	seedUser(ctx, conn, models.User{Name: "Hot singletons in your local area", Status: models.UserStatusBanned})

	fmt.Println("Creating projects...")
	morning := seedProject(ctx, conn, "Morning Show")
	nightWaves := seedProject(ctx, conn, "Night Waves")
	science := seedProject(ctx, conn, "Science Hour")

	fmt.Println("Creating episodes...")
	var episodes []*models.Episode
	for _, project := range []*models.Project{morning, nightWaves, science} {
		for n := 1; n <= 4; n++ {
			episodes = append(episodes, seedEpisode(ctx, conn, project, n))
		}
	}

	fmt.Println("Creating scripts...")
	authors := []*models.User{alice, bob, charlie, edna, admin}
	for i, episode := range episodes {
		author := authors[i%len(authors)]
		status := models.AllScriptStatuses[rand.Intn(len(models.AllScriptStatuses))]
		seedScript(ctx, conn, episode, author, status)
	}
	// A few drafts not yet tied to an episode
	for _, author := range []*models.User{alice, bob} {
		seedScript(ctx, conn, &models.Episode{ProjectID: morning.ID}, author, models.ScriptStatusDraft)
	}

	fmt.Println("Done!")
}

func seedUser(ctx context.Context, conn db.ConnOrTx, input models.User) *models.User {
	user, err := db.QueryOne[models.User](ctx, conn,
		`
		INSERT INTO hub_user (name, email, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING $columns
		`,
		input.Name,
		utils.OrDefault(input.Email, fmt.Sprintf("%s@example.com", input.Name)),
		utils.OrDefault(input.Role, models.UserRoleMember),
		utils.OrDefault(input.Status, models.UserStatusVerified),
		randomPastTime(),
	)
	if err != nil {
		panic(err)
	}

	return user
}

func seedProject(ctx context.Context, conn db.ConnOrTx, name string) *models.Project {
	description := lorem.Paragraph(1, 2)
	project, err := db.QueryOne[models.Project](ctx, conn,
		`
		INSERT INTO project (name, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING $columns
		`,
		name, description, randomPastTime(),
	)
	if err != nil {
		panic(err)
	}

	return project
}

func seedEpisode(ctx context.Context, conn db.ConnOrTx, project *models.Project, number int) *models.Episode {
	created := randomPastTime()
	broadcast := created.AddDate(0, 0, rand.Intn(30))
	episode, err := db.QueryOne[models.Episode](ctx, conn,
		`
		INSERT INTO episode (project_id, title, episode_number, broadcast_date, premium, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING $columns
		`,
		project.ID, lorem.Sentence(2, 6), number, broadcast, rand.Intn(4) == 0, created,
	)
	if err != nil {
		panic(err)
	}

	return episode
}

func seedScript(ctx context.Context, conn db.ConnOrTx, episode *models.Episode, author *models.User, status models.ScriptStatus) *models.Script {
	var episodeID *int
	if episode.ID != 0 {
		episodeID = &episode.ID
	}
	created := randomPastTime()
	var updated *time.Time
	if status != models.ScriptStatusDraft {
		t := created.AddDate(0, 0, rand.Intn(14))
		updated = &t
	}
	script, err := db.QueryOne[models.Script](ctx, conn,
		`
		INSERT INTO script (project_id, episode_id, author_id, title, content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING $columns
		`,
		episode.ProjectID, episodeID, author.ID, lorem.Sentence(2, 6), lorem.Paragraph(3, 6), status, created, updated,
	)
	if err != nil {
		panic(err)
	}

	return script
}

func randomPastTime() time.Time {
	return time.Now().AddDate(0, 0, -rand.Intn(90)).Add(-time.Duration(rand.Intn(86400)) * time.Second)
}
