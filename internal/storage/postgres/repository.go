package postgres

import "cityDesk/internal/service"

var (
	_ service.IssueRepository = (*IssueRepo)(nil)
	_ service.UserRepository  = (*UserRepo)(nil)
	_ service.AreaRepository  = (*AreaRepo)(nil)
)

func (p *Postgres) Issues() service.IssueRepository { return p.IssueRepo }
func (p *Postgres) Users() service.UserRepository   { return p.UserRepo }
func (p *Postgres) Areas() service.AreaRepository   { return p.AreaRepo }
