package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-companion/internal/handlers/companion/v1alpha1"
	"github.com/KirkDiggler/rpg-companion/internal/services/character"
	charactermock "github.com/KirkDiggler/rpg-companion/internal/services/character/mock"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *charactermock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = charactermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestImportCharacter() {
	testCases := []struct {
		name     string
		fields   map[string]any
		wantData string
	}{
		{
			name:     "raw data",
			fields:   map[string]any{"data": `{"name":"Thorin"}`},
			wantData: `{"name":"Thorin"}`,
		},
		{
			name:     "structured export",
			fields:   map[string]any{"export": map[string]any{"name": "Thorin"}},
			wantData: `{"name":"Thorin"}`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().
				ImportCharacter(s.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, input *character.ImportCharacterInput) (*character.ImportCharacterOutput, error) {
					s.JSONEq(tc.wantData, string(input.Data))
					return &character.ImportCharacterOutput{
						Character: &actor.Character{ID: "char-1", Name: "Thorin", Type: actor.TypeCharacter},
						Items:     []*actor.Item{{ID: "item-1", Name: "Warhammer", Type: actor.ItemTypeWeapon}},
					}, nil
				})

			resp, err := s.handler.ImportCharacter(s.ctx, s.request(tc.fields))

			s.Require().NoError(err)
			fields := resp.GetFields()
			s.Equal("char-1", fields["character"].GetStructValue().GetFields()["_id"].GetStringValue())
			s.Len(fields["items"].GetListValue().GetValues(), 1)
			s.NotNil(fields["unresolved"].GetListValue(), "unresolved is always a list")
		})
	}
}

func (s *HandlerTestSuite) TestImportCharacter_BadRequest() {
	testCases := []struct {
		name   string
		fields map[string]any
	}{
		{name: "empty request", fields: map[string]any{}},
		{name: "export is not an object", fields: map[string]any{"export": "Thorin"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.ImportCharacter(s.ctx, s.request(tc.fields))

			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestImportCharacter_ParseErrorCarriesOffset() {
	s.mockService.EXPECT().
		ImportCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("malformed export").WithMeta("offset", int64(9)))

	_, err := s.handler.ImportCharacter(s.ctx, s.request(map[string]any{"data": `{"name": `}))

	s.Require().Error(err)
	st := status.Convert(err)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Require().Len(st.Details(), 1)
	detail, ok := st.Details()[0].(*structpb.Struct)
	s.Require().True(ok)
	s.Equal(float64(9), detail.GetFields()["offset"].GetNumberValue())
}

func (s *HandlerTestSuite) TestExportCharacter() {
	s.mockService.EXPECT().
		ExportCharacter(s.ctx, &character.ExportCharacterInput{CharacterID: "char-1"}).
		Return(&character.ExportCharacterOutput{
			Export:   &companion.Export{Name: "Thorin", HP: 27},
			Filename: "thorin.cah",
		}, nil)

	resp, err := s.handler.ExportCharacter(s.ctx, s.request(map[string]any{"characterId": "char-1"}))

	s.Require().NoError(err)
	s.Equal("thorin.cah", resp.GetFields()["filename"].GetStringValue())
	export := resp.GetFields()["export"].GetStructValue().GetFields()
	s.Equal("Thorin", export["name"].GetStringValue())
	s.Equal(float64(27), export["hp"].GetNumberValue())
}

func (s *HandlerTestSuite) TestErrorCodes() {
	testCases := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{name: "not found", err: errors.NotFound("character not found"), wantCode: codes.NotFound},
		{name: "invalid", err: errors.InvalidArgument("characterID is required"), wantCode: codes.InvalidArgument},
		{name: "host failure", err: errors.Unavailable("redis down"), wantCode: codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().
				ExportCharacter(s.ctx, gomock.Any()).
				Return(nil, errors.Wrap(tc.err, "failed to export character"))

			_, err := s.handler.ExportCharacter(s.ctx, s.request(map[string]any{"characterId": "x"}))

			s.Equal(tc.wantCode, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestProjectSheet() {
	fields := sheet.NewFields()
	fields.SetText(sheet.FieldCharacterName, "Thorin")
	fields.SetChecked("Check Box 11")

	s.mockService.EXPECT().
		ProjectSheet(s.ctx, &character.ProjectSheetInput{CharacterID: "char-1", PlayerName: "Sam"}).
		Return(&character.ProjectSheetOutput{Fields: fields, CharacterName: "Thorin"}, nil)

	resp, err := s.handler.ProjectSheet(s.ctx, s.request(map[string]any{
		"characterId": "char-1",
		"playerName":  "Sam",
	}))

	s.Require().NoError(err)
	s.Equal("Thorin", resp.GetFields()["characterName"].GetStringValue())
	projected := resp.GetFields()["fields"].GetStructValue().GetFields()
	s.Equal("Thorin", projected["text"].GetStructValue().GetFields()[sheet.FieldCharacterName].GetStringValue())
	s.True(projected["checked"].GetStructValue().GetFields()["Check Box 11"].GetBoolValue())
}

func (s *HandlerTestSuite) TestStoredCharacters() {
	char := &actor.Character{ID: "char-1", Name: "Thorin", Type: actor.TypeCharacter}

	s.mockService.EXPECT().
		GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "char-1"}).
		Return(&character.GetCharacterOutput{Character: char}, nil)
	s.mockService.EXPECT().
		ListCharacters(s.ctx, &character.ListCharactersInput{Limit: 10}).
		Return(&character.ListCharactersOutput{Characters: []*actor.Character{char}}, nil)
	s.mockService.EXPECT().
		DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "char-1"}).
		Return(&character.DeleteCharacterOutput{}, nil)

	got, err := s.handler.GetCharacter(s.ctx, s.request(map[string]any{"characterId": "char-1"}))
	s.Require().NoError(err)
	s.Equal("Thorin", got.GetFields()["character"].GetStructValue().GetFields()["name"].GetStringValue())

	listed, err := s.handler.ListCharacters(s.ctx, s.request(map[string]any{"limit": 10}))
	s.Require().NoError(err)
	s.Len(listed.GetFields()["characters"].GetListValue().GetValues(), 1)

	deleted, err := s.handler.DeleteCharacter(s.ctx, s.request(map[string]any{"characterId": "char-1"}))
	s.Require().NoError(err)
	s.Empty(deleted.GetFields())
}

func (s *HandlerTestSuite) TestResolveItem() {
	testCases := []struct {
		name      string
		item      *actor.Item
		wantFound bool
	}{
		{name: "hit", item: &actor.Item{Name: "Longsword", Type: actor.ItemTypeWeapon}, wantFound: true},
		{name: "miss", item: nil, wantFound: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().
				ResolveItem(s.ctx, &character.ResolveItemInput{Name: "Longsword", Type: "weapon"}).
				Return(&character.ResolveItemOutput{Item: tc.item}, nil)

			resp, err := s.handler.ResolveItem(s.ctx, s.request(map[string]any{
				"name": "Longsword",
				"type": "weapon",
			}))

			s.Require().NoError(err)
			s.Equal(tc.wantFound, resp.GetFields()["found"].GetBoolValue())
			if tc.wantFound {
				s.Equal("Longsword", resp.GetFields()["item"].GetStructValue().GetFields()["name"].GetStringValue())
			}
		})
	}
}

// TestServiceDesc drives the handler through a real gRPC server over an in-memory listener
func (s *HandlerTestSuite) TestServiceDesc() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterCompanionServiceServer(srv, s.handler)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()
	client := v1alpha1.NewCompanionServiceClient(conn)

	s.mockService.EXPECT().
		ResolveItem(gomock.Any(), &character.ResolveItemInput{Name: "Rope"}).
		Return(&character.ResolveItemOutput{Item: &actor.Item{Name: "Rope", Type: actor.ItemTypeLoot}}, nil)
	s.mockService.EXPECT().
		GetCharacter(gomock.Any(), &character.GetCharacterInput{CharacterID: "missing"}).
		Return(nil, errors.NotFound("character not found"))

	resp, err := client.Call(s.ctx, v1alpha1.MethodResolveItem, s.request(map[string]any{"name": "Rope"}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["found"].GetBoolValue())

	_, err = client.Call(s.ctx, v1alpha1.MethodGetCharacter, s.request(map[string]any{"characterId": "missing"}))
	s.Equal(codes.NotFound, status.Code(err))
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}
