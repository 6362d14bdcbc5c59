package blocks

func seedDefaults(r *Registry) {
	r.defaults[TypeParagraph] = func() BlockData {
		return ParagraphData{Content: "", Align: "left"}
	}
	r.defaults[TypeText] = func() BlockData {
		return TextData{}
	}
	r.defaults[TypeHeading] = func() BlockData {
		return HeadingData{Level: 2, Align: "left"}
	}
	r.defaults[TypeImage] = func() BlockData {
		return ImageData{}
	}
	r.defaults[TypeGallery] = func() BlockData {
		return GalleryData{Images: []GalleryImage{}, Columns: 3}
	}
	r.defaults[TypeList] = func() BlockData {
		return ListData{Style: "bulleted", Items: []string{""}}
	}
	r.defaults[TypeQuote] = func() BlockData {
		return QuoteData{Style: "default"}
	}
	r.defaults[TypeVideo] = func() BlockData {
		return VideoData{}
	}
	r.defaults[TypeAudio] = func() BlockData {
		return AudioData{}
	}
	r.defaults[TypeCode] = func() BlockData {
		return CodeData{Language: "text"}
	}
	r.defaults[TypeDivider] = func() BlockData {
		return DividerData{Style: "line"}
	}
	r.defaults[TypeButton] = func() BlockData {
		return ButtonData{Label: "Learn more", Style: "primary"}
	}
	r.defaults[TypeHero] = func() BlockData {
		return HeroData{Overlay: true}
	}
	r.defaults[TypeEmbed] = func() BlockData {
		return EmbedData{}
	}
	r.defaults[TypeSocial] = func() BlockData {
		return SocialData{Network: "x"}
	}
	r.defaults[TypeMap] = func() BlockData {
		return MapData{Zoom: 13}
	}
	r.defaults[TypeAccordion] = func() BlockData {
		return AccordionData{Items: []AccordionItem{{Title: "Section"}}}
	}
	r.defaults[TypeHTML] = func() BlockData {
		return HTMLData{}
	}
	r.defaults[TypeTable] = func() BlockData {
		return TableData{
			Header: []string{"", ""},
			Rows:   [][]string{{"", ""}},
		}
	}
	r.defaults[TypeForm] = func() BlockData {
		return FormData{
			Fields:      []FormField{{Name: "email", Label: "Email", Kind: "email", Required: true}},
			SubmitLabel: "Submit",
		}
	}
	r.defaults[TypeCalendar] = func() BlockData {
		return CalendarData{Events: []CalendarEvent{}}
	}
	r.defaults[TypeSearch] = func() BlockData {
		return SearchData{Placeholder: "Search articles"}
	}
	r.defaults[TypeRecentPosts] = func() BlockData {
		return RecentPostsData{Count: 5}
	}
	r.defaults[TypeColumns] = func() BlockData {
		return ColumnsData{Columns: []Column{
			{ID: NewTempID(), Width: 50, WidthUnit: "%", Blocks: []Block{}},
			{ID: NewTempID(), Width: 50, WidthUnit: "%", Blocks: []Block{}},
		}}
	}
	r.defaults[TypeGroup] = func() BlockData {
		return GroupData{Blocks: []Block{}}
	}
	r.defaults[TypeRow] = func() BlockData {
		return RowData{Blocks: []Block{}}
	}
	r.defaults[TypeStack] = func() BlockData {
		return StackData{Blocks: []Block{}}
	}
}
