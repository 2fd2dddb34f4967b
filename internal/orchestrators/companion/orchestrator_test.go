package companion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	compendiummock "github.com/KirkDiggler/rpg-companion/internal/compendium/mock"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	companionorch "github.com/KirkDiggler/rpg-companion/internal/orchestrators/companion"
	characterrepo "github.com/KirkDiggler/rpg-companion/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-companion/internal/repositories/character/mock"
	"github.com/KirkDiggler/rpg-companion/internal/services/character"
	"github.com/KirkDiggler/rpg-companion/internal/services/exporter"
	exportermock "github.com/KirkDiggler/rpg-companion/internal/services/exporter/mock"
	"github.com/KirkDiggler/rpg-companion/internal/services/importer"
	importermock "github.com/KirkDiggler/rpg-companion/internal/services/importer/mock"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet"
	sheetmock "github.com/KirkDiggler/rpg-companion/internal/services/sheet/mock"
	"github.com/KirkDiggler/rpg-companion/internal/testutils"
	"github.com/KirkDiggler/rpg-companion/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *charactermock.MockRepository
	mockImporter *importermock.MockImporter
	mockExporter *exportermock.MockExporter
	mockSheet    *sheetmock.MockProjector
	mockResolver *compendiummock.MockResolver
	orchestrator *companionorch.Orchestrator
	ctx          context.Context

	character *actor.Character
	items     []*actor.Item
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockImporter = importermock.NewMockImporter(s.ctrl)
	s.mockExporter = exportermock.NewMockExporter(s.ctrl)
	s.mockSheet = sheetmock.NewMockProjector(s.ctrl)
	s.mockResolver = compendiummock.NewMockResolver(s.ctrl)
	s.ctx = context.Background()

	orch, err := companionorch.New(&companionorch.Config{
		CharacterRepo: s.mockRepo,
		Importer:      s.mockImporter,
		Exporter:      s.mockExporter,
		Projector:     s.mockSheet,
		Resolver:      s.mockResolver,
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.character = actor.NewCharacter("Thorin")
	s.items = []*actor.Item{
		{Name: "Dwarf", Type: actor.ItemTypeRace},
		{Name: "Fighter", Type: actor.ItemTypeClass},
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNew() {
	testCases := []struct {
		name    string
		cfg     *companionorch.Config
		wantErr string
	}{
		{name: "nil config", cfg: nil, wantErr: "config cannot be nil"},
		{
			name: "missing repository",
			cfg: &companionorch.Config{
				Importer:  s.mockImporter,
				Exporter:  s.mockExporter,
				Projector: s.mockSheet,
				Resolver:  s.mockResolver,
			},
			wantErr: "CharacterRepo",
		},
		{
			name:    "missing everything",
			cfg:     &companionorch.Config{},
			wantErr: "Importer",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := companionorch.New(tc.cfg)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *OrchestratorTestSuite) TestImportCharacter_Success() {
	data := []byte(`{"name": "Thorin", "jobs": [{"jobId": "FIGHTER"}]}`)

	s.mockImporter.EXPECT().
		ImportCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *importer.ImportCharacterInput) (*importer.ImportCharacterOutput, error) {
			s.Equal("Thorin", input.Export.Name)
			s.Require().Len(input.Export.Jobs, 1)
			return &importer.ImportCharacterOutput{
				Character:  s.character,
				Items:      s.items,
				Unresolved: []string{"Fighter"},
			}, nil
		})

	stored := *s.character
	stored.ID = "char-1"
	gomock.InOrder(
		s.mockRepo.EXPECT().
			CreateCharacter(gomock.Any(), characterrepo.CreateCharacterInput{Character: s.character}).
			Return(&characterrepo.CreateCharacterOutput{Character: &stored}, nil),
		s.mockRepo.EXPECT().
			AttachItems(gomock.Any(), characterrepo.AttachItemsInput{CharacterID: "char-1", Items: s.items}).
			Return(&characterrepo.AttachItemsOutput{Items: s.items}, nil),
	)

	out, err := s.orchestrator.ImportCharacter(s.ctx, &character.ImportCharacterInput{Data: data})

	s.Require().NoError(err)
	s.Equal("char-1", out.Character.ID)
	s.Len(out.Items, 2)
	s.Equal([]string{"Fighter"}, out.Unresolved)
}

func (s *OrchestratorTestSuite) TestImportCharacter_ReturnsStoredItems() {
	items := testutils.CreateTestItems()
	for _, item := range items {
		item.ID = ""
	}
	s.mockImporter.EXPECT().
		ImportCharacter(gomock.Any(), gomock.Any()).
		Return(&importer.ImportCharacterOutput{Character: testutils.CreateTestCharacter(), Items: items}, nil)
	mocks.ExpectCharacterCreate(s.mockRepo, "char-9")
	mocks.ExpectItemsAttach(s.mockRepo)

	out, err := s.orchestrator.ImportCharacter(s.ctx, &character.ImportCharacterInput{Data: []byte(`{}`)})

	s.Require().NoError(err)
	s.Equal("char-9", out.Character.ID)
	s.Require().Len(out.Items, len(items))
	s.Equal("char-9-item-1", out.Items[0].ID)
	s.Empty(items[0].ID, "the mapped items are not the stored ones")
}

func (s *OrchestratorTestSuite) TestImportCharacter_NoItemsSkipsAttach() {
	s.mockImporter.EXPECT().
		ImportCharacter(gomock.Any(), gomock.Any()).
		Return(&importer.ImportCharacterOutput{Character: s.character}, nil)

	stored := *s.character
	stored.ID = "char-1"
	s.mockRepo.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		Return(&characterrepo.CreateCharacterOutput{Character: &stored}, nil)

	out, err := s.orchestrator.ImportCharacter(s.ctx, &character.ImportCharacterInput{Data: []byte(`{}`)})

	s.Require().NoError(err)
	s.Empty(out.Items)
}

func (s *OrchestratorTestSuite) TestImportCharacter_Errors() {
	testCases := []struct {
		name      string
		input     *character.ImportCharacterInput
		setupMock func()
		checkErr  func(error) bool
	}{
		{
			name:     "nil input",
			input:    nil,
			checkErr: errors.IsInvalidArgument,
		},
		{
			name:     "malformed json stores nothing",
			input:    &character.ImportCharacterInput{Data: []byte(`{"name": `)},
			checkErr: errors.IsInvalidArgument,
		},
		{
			name:  "character creation fails",
			input: &character.ImportCharacterInput{Data: []byte(`{}`)},
			setupMock: func() {
				s.mockImporter.EXPECT().ImportCharacter(gomock.Any(), gomock.Any()).
					Return(&importer.ImportCharacterOutput{Character: s.character, Items: s.items}, nil)
				s.mockRepo.EXPECT().CreateCharacter(gomock.Any(), gomock.Any()).
					Return(nil, errors.Internal("redis down"))
			},
			checkErr: errors.IsInternal,
		},
		{
			name:  "attach fails",
			input: &character.ImportCharacterInput{Data: []byte(`{}`)},
			setupMock: func() {
				stored := *s.character
				stored.ID = "char-1"
				s.mockImporter.EXPECT().ImportCharacter(gomock.Any(), gomock.Any()).
					Return(&importer.ImportCharacterOutput{Character: s.character, Items: s.items}, nil)
				s.mockRepo.EXPECT().CreateCharacter(gomock.Any(), gomock.Any()).
					Return(&characterrepo.CreateCharacterOutput{Character: &stored}, nil)
				s.mockRepo.EXPECT().AttachItems(gomock.Any(), gomock.Any()).
					Return(nil, errors.Unavailable("redis down"))
			},
			checkErr: errors.IsUnavailable,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}

			out, err := s.orchestrator.ImportCharacter(s.ctx, tc.input)

			s.Require().Error(err)
			s.Nil(out)
			s.True(tc.checkErr(err), err.Error())
		})
	}
}

func (s *OrchestratorTestSuite) TestExportCharacter() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "char-1"}).
		Return(&characterrepo.GetOutput{Character: s.character, Items: s.items}, nil)
	s.mockExporter.EXPECT().
		ExportCharacter(gomock.Any(), &exporter.ExportCharacterInput{Character: s.character, Items: s.items}).
		Return(&exporter.ExportCharacterOutput{
			Export:   &companion.Export{Name: "Thorin"},
			Filename: "thorin.cah",
		}, nil)

	out, err := s.orchestrator.ExportCharacter(s.ctx, &character.ExportCharacterInput{CharacterID: "char-1"})

	s.Require().NoError(err)
	s.Equal("thorin.cah", out.Filename)
	s.Contains(string(out.Data), `"name": "Thorin"`)
}

func (s *OrchestratorTestSuite) TestExportCharacter_Errors() {
	testCases := []struct {
		name      string
		input     *character.ExportCharacterInput
		setupMock func()
		checkErr  func(error) bool
	}{
		{name: "nil input", checkErr: errors.IsInvalidArgument},
		{name: "empty id", input: &character.ExportCharacterInput{}, checkErr: errors.IsInvalidArgument},
		{
			name:  "not found",
			input: &character.ExportCharacterInput{CharacterID: "missing"},
			setupMock: func() {
				s.mockRepo.EXPECT().Get(gomock.Any(), characterrepo.GetInput{ID: "missing"}).
					Return(nil, errors.NotFound("character not found"))
			},
			checkErr: errors.IsNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}

			_, err := s.orchestrator.ExportCharacter(s.ctx, tc.input)

			s.Require().Error(err)
			s.True(tc.checkErr(err), err.Error())
		})
	}
}

func (s *OrchestratorTestSuite) TestProjectSheet() {
	fields := sheet.NewFields()
	fields.SetText(sheet.FieldCharacterName, "Thorin")

	s.mockRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "char-1"}).
		Return(&characterrepo.GetOutput{Character: s.character, Items: s.items}, nil)
	s.mockSheet.EXPECT().
		ProjectSheet(gomock.Any(), &sheet.ProjectSheetInput{Character: s.character, Items: s.items, PlayerName: "Sam"}).
		Return(&sheet.ProjectSheetOutput{Fields: fields}, nil)

	out, err := s.orchestrator.ProjectSheet(s.ctx, &character.ProjectSheetInput{
		CharacterID: "char-1",
		PlayerName:  "Sam",
	})

	s.Require().NoError(err)
	s.Equal("Thorin", out.CharacterName)
	s.Same(fields, out.Fields)
}

func (s *OrchestratorTestSuite) TestProjectSheet_NotFound() {
	mocks.ExpectCharacterGet(s.mockRepo, testutils.TestCharacterID, nil, nil,
		errors.NotFoundf("character with ID %s not found", testutils.TestCharacterID))

	_, err := s.orchestrator.ProjectSheet(s.ctx, &character.ProjectSheetInput{CharacterID: testutils.TestCharacterID})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestProjectSheet_NilInput() {
	_, err := s.orchestrator.ProjectSheet(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetListDelete() {
	s.mockRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char-1"}).
		Return(&characterrepo.GetOutput{Character: s.character, Items: s.items}, nil)
	s.mockRepo.EXPECT().
		List(s.ctx, characterrepo.ListInput{Limit: 5}).
		Return(&characterrepo.ListOutput{Characters: []*actor.Character{s.character}}, nil)
	s.mockRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char-1"}).
		Return(&characterrepo.DeleteOutput{}, nil)

	got, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Equal(s.character, got.Character)
	s.Len(got.Items, 2)

	listed, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{Limit: 5})
	s.Require().NoError(err)
	s.Len(listed.Characters, 1)

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestGetListDelete_Validation() {
	_, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{Limit: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "  "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResolveItem() {
	testCases := []struct {
		name      string
		input     *character.ResolveItemInput
		setupMock func()
		wantItem  bool
		checkErr  func(error) bool
	}{
		{
			name:  "found",
			input: &character.ResolveItemInput{Name: "Longsword", Type: actor.ItemTypeWeapon},
			setupMock: func() {
				mocks.ExpectResolve(s.mockResolver, "Longsword", actor.ItemTypeWeapon,
					&actor.Item{Name: "Longsword", Type: actor.ItemTypeWeapon})
			},
			wantItem: true,
		},
		{
			name:  "not found is not an error",
			input: &character.ResolveItemInput{Name: "Vorpal Spoon"},
			setupMock: func() {
				mocks.ExpectResolve(s.mockResolver, "Vorpal Spoon", "", nil)
			},
		},
		{
			name:     "missing name",
			input:    &character.ResolveItemInput{},
			checkErr: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}

			out, err := s.orchestrator.ResolveItem(s.ctx, tc.input)

			if tc.checkErr != nil {
				s.Require().Error(err)
				s.True(tc.checkErr(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantItem, out.Item != nil)
		})
	}
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
