package proto

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Empty is the response of delete operations.
type Empty struct{}

type LoginRequest struct {
	UserId uint64 `json:"user_id,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token,omitempty"`
}

type Song struct {
	Id          uint64 `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

type CreateSongRequest struct {
	Song *Song `json:"song,omitempty"`
}

type GetSongRequest struct {
	// Name is the decimal id of the song.
	Name string `json:"name,omitempty"`
}

type ListSongsRequest struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type ListSongsResponse struct {
	Songs         []*Song `json:"songs,omitempty"`
	NextPageToken string  `json:"next_page_token,omitempty"`
}

type UpdateSongRequest struct {
	Song       *Song                  `json:"song,omitempty"`
	UpdateMask *fieldmaskpb.FieldMask `json:"update_mask,omitempty"`
}

type DeleteSongRequest struct {
	Name string `json:"name,omitempty"`
}

type Concert struct {
	Id   uint64                 `json:"id,omitempty"`
	Name string                 `json:"name,omitempty"`
	Date *timestamppb.Timestamp `json:"date,omitempty"`
}

type CreateConcertRequest struct {
	Concert *Concert `json:"concert,omitempty"`
}

type GetConcertRequest struct {
	Name string `json:"name,omitempty"`
}

type ListConcertsRequest struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type ListConcertsResponse struct {
	Concerts      []*Concert `json:"concerts,omitempty"`
	NextPageToken string     `json:"next_page_token,omitempty"`
}

type UpdateConcertRequest struct {
	Concert    *Concert               `json:"concert,omitempty"`
	UpdateMask *fieldmaskpb.FieldMask `json:"update_mask,omitempty"`
}

type DeleteConcertRequest struct {
	Name string `json:"name,omitempty"`
}

type Participation struct {
	SongId    uint64 `json:"song_id,omitempty"`
	PersonId  uint64 `json:"person_id,omitempty"`
	Role      string `json:"role,omitempty"`
	RoleTitle string `json:"role_title,omitempty"`
}

type CreateParticipationRequest struct {
	Participation *Participation `json:"participation,omitempty"`
}

type GetParticipationRequest struct {
	// Name is the colon-delimited triplet "songId:personId:role".
	Name string `json:"name,omitempty"`
}

type ListParticipationsRequest struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type ListParticipationsResponse struct {
	Participations []*Participation `json:"participations,omitempty"`
	NextPageToken  string           `json:"next_page_token,omitempty"`
}

type UpdateParticipationRequest struct {
	Participation *Participation         `json:"participation,omitempty"`
	UpdateMask    *fieldmaskpb.FieldMask `json:"update_mask,omitempty"`
}

type DeleteParticipationRequest struct {
	Name string `json:"name,omitempty"`
}
