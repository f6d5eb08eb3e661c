package apperror

// Code enumerates every domain error the service can raise.
type Code int

const (
	CodeNone Code = iota

	AddThreadMissingProperty
	AddThreadInvalidType
	ThreadMissingProperty
	ThreadInvalidType
	ThreadDetailMissingProperty
	ThreadDetailInvalidType

	AddCommentMissingProperty
	AddCommentInvalidType
	CommentMissingProperty
	CommentInvalidType
	CommentDetailMissingProperty
	CommentDetailInvalidType
	DeleteCommentMissingParameter
	DeleteCommentInvalidType
	CommentNotTheOwner

	AddReplyMissingProperty
	AddReplyInvalidType
	ReplyMissingProperty
	ReplyInvalidType
	ReplyDetailMissingProperty
	ReplyDetailInvalidType
	DeleteReplyMissingParameter
	DeleteReplyInvalidType
	ReplyNotTheOwner

	NewLikeMissingParameter
	NewLikeInvalidType

	RegisterUserMissingProperty
	RegisterUserInvalidType
	RegisterUserUsernameLimitChar
	RegisterUserUsernameRestrictedChar
	RegisteredUserMissingProperty
	UserLoginMissingProperty
	UserLoginInvalidType
	NewAuthMissingProperty
	RefreshAuthenticationMissingToken
	RefreshAuthenticationInvalidType
	DeleteAuthenticationMissingToken
	DeleteAuthenticationInvalidType
)

// String returns the wire code, e.g. ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY.
func (c Code) String() string {
	switch c {
	case AddThreadMissingProperty:
		return "ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"
	case AddThreadInvalidType:
		return "ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case ThreadMissingProperty:
		return "THREAD.NOT_CONTAIN_NEEDED_PROPERTY"
	case ThreadInvalidType:
		return "THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case ThreadDetailMissingProperty:
		return "THREAD_ID.NOT_CONTAIN_NEEDED_PROPERTY"
	case ThreadDetailInvalidType:
		return "THREAD_ID.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case AddCommentMissingProperty:
		return "ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"
	case AddCommentInvalidType:
		return "ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case CommentMissingProperty:
		return "COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"
	case CommentInvalidType:
		return "COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case CommentDetailMissingProperty:
		return "COMMENT_ID.NOT_CONTAIN_NEEDED_PROPERTY"
	case CommentDetailInvalidType:
		return "COMMENT_ID.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case DeleteCommentMissingParameter:
		return "DELETE_COMMENT.NOT_CONTAIN_NEEDED_PARAMETER"
	case DeleteCommentInvalidType:
		return "DELETE_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case CommentNotTheOwner:
		return "VALIDATION_COMMENT.NOT_THE_OWNER"
	case AddReplyMissingProperty:
		return "ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY"
	case AddReplyInvalidType:
		return "ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case ReplyMissingProperty:
		return "REPLY.NOT_CONTAIN_NEEDED_PROPERTY"
	case ReplyInvalidType:
		return "REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case ReplyDetailMissingProperty:
		return "REPLY_ID.NOT_CONTAIN_NEEDED_PROPERTY"
	case ReplyDetailInvalidType:
		return "REPLY_ID.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case DeleteReplyMissingParameter:
		return "DELETE_REPLY.NOT_CONTAIN_NEEDED_PARAMETER"
	case DeleteReplyInvalidType:
		return "DELETE_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case ReplyNotTheOwner:
		return "VALIDATION_REPLY.NOT_THE_OWNER"
	case NewLikeMissingParameter:
		return "NEW_LIKE.NOT_CONTAIN_NEEDED_PARAMETER"
	case NewLikeInvalidType:
		return "NEW_LIKE.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case RegisterUserMissingProperty:
		return "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY"
	case RegisterUserInvalidType:
		return "REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case RegisterUserUsernameLimitChar:
		return "REGISTER_USER.USERNAME_LIMIT_CHAR"
	case RegisterUserUsernameRestrictedChar:
		return "REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER"
	case RegisteredUserMissingProperty:
		return "REGISTERED_USER.NOT_CONTAIN_NEEDED_PROPERTY"
	case UserLoginMissingProperty:
		return "USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY"
	case UserLoginInvalidType:
		return "USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION"
	case NewAuthMissingProperty:
		return "NEW_AUTH.NOT_CONTAIN_NEEDED_PROPERTY"
	case RefreshAuthenticationMissingToken:
		return "REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN"
	case RefreshAuthenticationInvalidType:
		return "REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
	case DeleteAuthenticationMissingToken:
		return "DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN"
	case DeleteAuthenticationInvalidType:
		return "DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
	default:
		return "UNKNOWN"
	}
}

// Kind classifies the code. Owner mismatches are authorization failures,
// everything else raised by validators is an invariant violation.
func (c Code) Kind() Kind {
	switch c {
	case CodeNone:
		return KindUnknown
	case CommentNotTheOwner, ReplyNotTheOwner:
		return KindAuthorization
	case ThreadMissingProperty, ThreadInvalidType,
		CommentMissingProperty, CommentInvalidType,
		ReplyMissingProperty, ReplyInvalidType,
		RegisteredUserMissingProperty, NewAuthMissingProperty:
		// 仓储层返回的数据不完整，属于服务端问题
		return KindUnknown
	default:
		return KindInvariant
	}
}

// Message 将错误码翻译成印尼语提示
func (c Code) Message() string {
	switch c {
	case AddThreadMissingProperty, ThreadMissingProperty, ThreadDetailMissingProperty:
		return "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada"
	case AddThreadInvalidType, ThreadInvalidType, ThreadDetailInvalidType:
		return "tidak dapat membuat thread baru karena tipe data tidak sesuai"
	case AddCommentMissingProperty, CommentMissingProperty, CommentDetailMissingProperty:
		return "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada"
	case AddCommentInvalidType, CommentInvalidType, CommentDetailInvalidType:
		return "tidak dapat membuat komentar baru karena tipe data tidak sesuai"
	case DeleteCommentMissingParameter:
		return "harus mengirimkan threadId dan commentId"
	case DeleteCommentInvalidType:
		return "threadId, commentId dan owner harus string"
	case CommentNotTheOwner:
		return "anda bukan pemilik komentar ini"
	case AddReplyMissingProperty, ReplyMissingProperty, ReplyDetailMissingProperty:
		return "tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada"
	case AddReplyInvalidType, ReplyInvalidType, ReplyDetailInvalidType:
		return "tidak dapat membuat balasan baru karena tipe data tidak sesuai"
	case DeleteReplyMissingParameter:
		return "harus mengirimkan threadId, commentId, dan replyId"
	case DeleteReplyInvalidType:
		return "commentId, threadId, replyId, dan owner harus string"
	case ReplyNotTheOwner:
		return "anda bukan pemilik balasan ini"
	case NewLikeMissingParameter:
		return "tidak dapat membuat like baru karena parameter yang dibutuhkan tidak ada"
	case NewLikeInvalidType:
		return "tidak dapat membuat like baru karena tipe data tidak sesuai"
	case RegisterUserMissingProperty, RegisteredUserMissingProperty:
		return "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada"
	case RegisterUserInvalidType:
		return "tidak dapat membuat user baru karena tipe data tidak sesuai"
	case RegisterUserUsernameLimitChar:
		return "tidak dapat membuat user baru karena karakter username melebihi batas limit"
	case RegisterUserUsernameRestrictedChar:
		return "tidak dapat membuat user baru karena username mengandung karakter terlarang"
	case UserLoginMissingProperty:
		return "harus mengirimkan username dan password"
	case UserLoginInvalidType:
		return "username dan password harus string"
	case NewAuthMissingProperty:
		return "token autentikasi tidak lengkap"
	case RefreshAuthenticationMissingToken, DeleteAuthenticationMissingToken:
		return "harus mengirimkan token refresh"
	case RefreshAuthenticationInvalidType, DeleteAuthenticationInvalidType:
		return "refresh token harus string"
	default:
		return "terjadi kegagalan pada server kami"
	}
}
